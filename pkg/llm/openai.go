package llm

import (
	"context"
	"fmt"
	"scholar-ai-go/internal/config"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// openAIClient 调用任何兼容 OpenAI chat completions 协议的服务（DeepSeek、本地网关等）。
type openAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a Client for an OpenAI-compatible endpoint.
func NewOpenAIClient(cfg config.LLMConfig) Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (c *openAIClient) Generate(ctx context.Context, req Request) (string, error) {
	if len(req.Contents) == 0 {
		return "", ErrNoContents
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Contents)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, m := range req.Contents {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if req.Schema != nil {
		def := toJSONSchema(req.Schema)
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "response",
				Schema: &def,
			},
		}
	}
	if p := req.Params; p != nil {
		if p.Temperature != nil {
			chatReq.Temperature = float32(*p.Temperature)
		}
		if p.TopP != nil {
			chatReq.TopP = float32(*p.TopP)
		}
		if p.MaxTokens != nil {
			chatReq.MaxTokens = *p.MaxTokens
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("failed to call chat api: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func toJSONSchema(s *Schema) jsonschema.Definition {
	def := jsonschema.Definition{
		Type:     jsonschemaType(s.Type),
		Required: s.Required,
	}
	if s.Items != nil {
		items := toJSONSchema(s.Items)
		def.Items = &items
	}
	if len(s.Properties) > 0 {
		def.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			def.Properties[name] = toJSONSchema(prop)
		}
	}
	return def
}

func jsonschemaType(t Type) jsonschema.DataType {
	switch t {
	case TypeString:
		return jsonschema.String
	case TypeNumber:
		return jsonschema.Number
	case TypeArray:
		return jsonschema.Array
	}
	return jsonschema.Object
}
