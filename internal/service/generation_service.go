// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/pkg/llm"
	"strings"
)

const (
	coachInstruction = "You are an AI Student Success Coach. Be helpful, concise, and encouraging. Focus on academic success and student well-being."

	chatFallback     = "I'm sorry, I couldn't process that."
	explainFallback  = "Failed to generate explanation."
	wellnessFallback = "Be kind to yourself today."
)

var (
	// ErrGenerationDeclined 表示模型返回了空文本或空对象，没有产出任何结构化内容。
	ErrGenerationDeclined = errors.New("generation returned no structured content")
	// ErrMalformedResponse 表示模型返回的内容无法解析为期望的结构。
	ErrMalformedResponse = errors.New("generation returned malformed JSON")
)

// GenerationService 是对外部生成服务的类型化封装，每个界面功能对应一个方法。
// 调用失败时原样返回错误，不做重试，由调用方决定如何展示。
type GenerationService interface {
	ChatReply(ctx context.Context, history []model.ChatMessage, next string) (string, error)
	GeneratePlan(ctx context.Context, subjects []string, examDates string, dailyHours int) (*model.StudyPlan, error)
	ExplainConcept(ctx context.Context, concept string) (string, error)
	SummarizeAndQuiz(ctx context.Context, notes string) (*model.StudyResources, error)
	WellnessAdvice(ctx context.Context, mood string) (string, error)
}

type generationService struct {
	llmClient llm.Client
	params    *llm.GenerationParams
}

// NewGenerationService 创建一个新的 GenerationService 实例。params 可以为 nil。
func NewGenerationService(llmClient llm.Client, params *llm.GenerationParams) GenerationService {
	return &generationService{llmClient: llmClient, params: params}
}

var (
	planSchema = llm.Object(
		llm.Field{Name: "subjects", Schema: llm.ArrayOf(llm.String())},
		llm.Field{Name: "examDates", Schema: llm.String()},
		llm.Field{Name: "dailyHours", Schema: llm.Number()},
		llm.Field{Name: "schedule", Schema: llm.ArrayOf(llm.Object(
			llm.Field{Name: "day", Schema: llm.String()},
			llm.Field{Name: "time", Schema: llm.String()},
			llm.Field{Name: "activity", Schema: llm.String()},
			llm.Field{Name: "topic", Schema: llm.String()},
		))},
	)

	resourcesSchema = llm.Object(
		llm.Field{Name: "summary", Schema: llm.String()},
		llm.Field{Name: "quiz", Schema: llm.ArrayOf(llm.Object(
			llm.Field{Name: "question", Schema: llm.String()},
			llm.Field{Name: "options", Schema: llm.ArrayOf(llm.String())},
			llm.Field{Name: "answer", Schema: llm.String()},
			llm.Field{Name: "explanation", Schema: llm.String()},
		))},
	)
)

// ChatReply 把历史消息与新消息按顺序发送给模型，并附带学习教练的系统指令。
func (s *generationService) ChatReply(ctx context.Context, history []model.ChatMessage, next string) (string, error) {
	contents := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == model.RoleModel {
			role = llm.RoleModel
		}
		contents = append(contents, llm.Message{Role: role, Content: m.Content})
	}
	contents = append(contents, llm.Message{Role: llm.RoleUser, Content: next})

	text, err := s.llmClient.Generate(ctx, llm.Request{
		Contents:          contents,
		SystemInstruction: coachInstruction,
		Params:            s.params,
	})
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}
	return orFallback(text, chatFallback), nil
}

// GeneratePlan 请求一份结构化的周学习计划。
func (s *generationService) GeneratePlan(ctx context.Context, subjects []string, examDates string, dailyHours int) (*model.StudyPlan, error) {
	prompt := fmt.Sprintf("Generate a structured study plan for a student taking the following subjects: %s.\n"+
		"The exams are scheduled around %s. The student can dedicate %d hours per day.\n"+
		"Ensure the plan includes revision slots and break recommendations.",
		strings.Join(subjects, ", "), examDates, dailyHours)

	var plan model.StudyPlan
	if err := s.generateJSON(ctx, prompt, planSchema, &plan); err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}
	return &plan, nil
}

// ExplainConcept 用直观的语言和类比解释一个概念。
func (s *generationService) ExplainConcept(ctx context.Context, concept string) (string, error) {
	prompt := fmt.Sprintf("Explain \"%s\" in simple, intuitive terms for a university student. Include an analogy.", concept)
	text, err := s.generateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("explain concept: %w", err)
	}
	return orFallback(text, explainFallback), nil
}

// SummarizeAndQuiz 根据笔记生成摘要和 5 道练习题。
func (s *generationService) SummarizeAndQuiz(ctx context.Context, notes string) (*model.StudyResources, error) {
	prompt := "Based on the following notes, provide a concise summary and 5 practice quiz questions.\nNotes: " + notes

	var res model.StudyResources
	if err := s.generateJSON(ctx, prompt, resourcesSchema, &res); err != nil {
		return nil, fmt.Errorf("summarize notes: %w", err)
	}
	return &res, nil
}

// WellnessAdvice 针对心情给出非医疗性质的建议，开头带免责声明。
func (s *generationService) WellnessAdvice(ctx context.Context, mood string) (string, error) {
	prompt := fmt.Sprintf("The student is feeling \"%s\". Provide comforting, non-medical advice for stress management and productivity. "+
		"Start with a disclaimer that you are not a professional therapist.", mood)
	text, err := s.generateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("wellness advice: %w", err)
	}
	return orFallback(text, wellnessFallback), nil
}

func (s *generationService) generateText(ctx context.Context, prompt string) (string, error) {
	req := llm.Prompt(prompt)
	req.Params = s.params
	return s.llmClient.Generate(ctx, req)
}

// generateJSON 发起带 schema 的调用并解码到 out。
// 空文本或空对象视为模型拒绝生成，其余无法解析的内容视为格式错误。
func (s *generationService) generateJSON(ctx context.Context, prompt string, schema *llm.Schema, out interface{}) error {
	req := llm.Prompt(prompt)
	req.Schema = schema
	req.Params = s.params

	text, err := s.llmClient.Generate(ctx, req)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrGenerationDeclined
	}
	raw, err := llm.ExtractJSONObject(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if isEmptyObject(raw) {
		return ErrGenerationDeclined
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func isEmptyObject(raw string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return false
	}
	return len(obj) == 0
}

func orFallback(text, fallback string) string {
	if text == "" {
		return fallback
	}
	return text
}
