package controller

import (
	"context"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/service"
	"scholar-ai-go/pkg/log"
	"strings"
	"sync"
	"time"
)

const chatErrorReply = "Error: I'm having trouble connecting to my brain. Please check your API key!"

// Chat 是学习教练对话页面的状态，消息只保存在内存中。
type Chat struct {
	gen service.GenerationService

	mu       sync.Mutex
	messages []model.ChatMessage
	loading  bool
	detached bool
}

// ChatSnapshot 是对话页面的只读快照。
type ChatSnapshot struct {
	Messages []model.ChatMessage `json:"messages"`
	Loading  bool                `json:"loading"`
	// ScrollToIndex 指向最新一条消息，没有消息时为 -1。
	ScrollToIndex int `json:"scrollToIndex"`
}

// NewChat 创建一个空的对话页面。
func NewChat(gen service.GenerationService) *Chat {
	return &Chat{gen: gen, messages: []model.ChatMessage{}}
}

func (c *Chat) View() model.ViewType { return model.ViewChat }

// Send 追加用户消息并请求回复，返回追加的回复消息。
// 生成失败时回复为固定的道歉文本而不是错误；页面卸载后完成的回复会被丢弃。
func (c *Chat) Send(ctx context.Context, text string) (model.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.ChatMessage{}, ErrEmptyInput
	}

	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return model.ChatMessage{}, ErrBusy
	}
	history := make([]model.ChatMessage, len(c.messages))
	copy(history, c.messages)
	c.messages = append(c.messages, model.ChatMessage{
		Role:      model.RoleUser,
		Content:   trimmed,
		Timestamp: model.LocalTime(time.Now()),
	})
	c.loading = true
	c.mu.Unlock()

	content, err := c.gen.ChatReply(context.WithoutCancel(ctx), history, trimmed)
	if err != nil {
		log.Errorf("chat reply failed: %v", err)
		content = chatErrorReply
	}
	reply := model.ChatMessage{Role: model.RoleModel, Content: content, Timestamp: model.LocalTime(time.Now())}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if !c.detached {
		c.messages = append(c.messages, reply)
	}
	return reply, nil
}

// Snapshot 返回当前对话状态的副本。
func (c *Chat) Snapshot() ChatSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	msgs := make([]model.ChatMessage, len(c.messages))
	copy(msgs, c.messages)
	return ChatSnapshot{Messages: msgs, Loading: c.loading, ScrollToIndex: len(msgs) - 1}
}

func (c *Chat) snapshot() interface{} { return c.Snapshot() }

func (c *Chat) unmount() {
	c.mu.Lock()
	c.detached = true
	c.mu.Unlock()
}
