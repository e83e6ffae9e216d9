package llm

import (
	"context"
	"fmt"
	"scholar-ai-go/internal/config"

	"google.golang.org/genai"
)

// geminiClient 通过官方 genai SDK 调用 Gemini API。
type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Client backed by the Gemini Developer API.
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiClient{client: client, model: cfg.Model}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if len(req.Contents) == 0 {
		return "", ErrNoContents
	}

	contents := make([]*genai.Content, 0, len(req.Contents))
	for _, m := range req.Contents {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, geminiConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return res.Text(), nil
}

func geminiConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGeminiSchema(req.Schema)
	}
	if p := req.Params; p != nil {
		if p.Temperature != nil {
			t := float32(*p.Temperature)
			cfg.Temperature = &t
		}
		if p.TopP != nil {
			tp := float32(*p.TopP)
			cfg.TopP = &tp
		}
		if p.MaxTokens != nil {
			cfg.MaxOutputTokens = int32(*p.MaxTokens)
		}
	}
	return cfg
}

func toGeminiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             geminiType(s.Type),
		Required:         s.Required,
		PropertyOrdering: s.PropertyOrder,
		Items:            toGeminiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}
	return out
}

func geminiType(t Type) genai.Type {
	switch t {
	case TypeString:
		return genai.TypeString
	case TypeNumber:
		return genai.TypeNumber
	case TypeArray:
		return genai.TypeArray
	case TypeObject:
		return genai.TypeObject
	}
	return genai.TypeUnspecified
}
