// Package llm provides a provider-neutral client for text and JSON generation.
package llm

import (
	"context"
	"errors"
	"fmt"
	"scholar-ai-go/internal/config"
	"time"
)

// Role 标识一条对话消息的发言方。
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message 表示一条角色消息
type Message struct {
	Role    Role
	Content string
}

// GenerationParams 控制生成行为，nil 字段交由服务端默认值决定。
type GenerationParams struct {
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Request 是一次生成调用的完整描述：按顺序排列的消息、可选的系统指令，
// 以及可选的 JSON 输出 schema。Schema 非空时返回值应为 JSON 文本。
type Request struct {
	Contents          []Message
	SystemInstruction string
	Schema            *Schema
	Params            *GenerationParams
}

// Prompt 构造只有一条用户消息的请求。
func Prompt(text string) Request {
	return Request{Contents: []Message{{Role: RoleUser, Content: text}}}
}

// Client defines the interface for an LLM client.
type Client interface {
	// Generate 发起一次非流式调用并返回原始文本；模型未返回文本时为空字符串而非错误。
	Generate(ctx context.Context, req Request) (string, error)
}

// ErrNoContents is returned when a request carries no messages.
var ErrNoContents = errors.New("llm: request has no contents")

// NewClient creates a new LLM client based on the provider in the config.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	var (
		c   Client
		err error
	)
	switch cfg.Provider {
	case "gemini", "":
		c, err = NewGeminiClient(ctx, cfg)
	case "openai":
		c = NewOpenAIClient(cfg)
	case "mock":
		c = NewMockClient()
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		c = &timeoutClient{next: c, timeout: time.Duration(cfg.Timeout) * time.Second}
	}
	return c, nil
}

// DefaultParams 从全局配置读取生成参数（若非零值），全部为零时返回 nil。
func DefaultParams(cfg config.LLMGenerationConfig) *GenerationParams {
	var gp GenerationParams
	if cfg.Temperature != 0 {
		t := cfg.Temperature
		gp.Temperature = &t
	}
	if cfg.TopP != 0 {
		p := cfg.TopP
		gp.TopP = &p
	}
	if cfg.MaxTokens != 0 {
		m := cfg.MaxTokens
		gp.MaxTokens = &m
	}
	if gp.Temperature == nil && gp.TopP == nil && gp.MaxTokens == nil {
		return nil
	}
	return &gp
}

// timeoutClient 为每次调用附加超时；默认配置下不启用，调用可以无限等待。
type timeoutClient struct {
	next    Client
	timeout time.Duration
}

func (c *timeoutClient) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.next.Generate(ctx, req)
}
