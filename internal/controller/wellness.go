package controller

import (
	"context"
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/service"
	"scholar-ai-go/pkg/log"
	"sync"

	"github.com/google/uuid"
)

const wellnessErrorAdvice = "I'm here for you, but I'm having a little trouble thinking. Take a deep breath and maybe try again in a minute."

// Wellness 是心情打卡页面的状态。
// 每次请求都带一个令牌；选择新的心情会取消上一个请求，过期的结果被忽略，
// Loading 只在最新的请求完成时清除。
type Wellness struct {
	gen service.GenerationService

	mu       sync.Mutex
	mood     model.Mood
	advice   string
	loading  bool
	token    string
	cancel   context.CancelFunc
	detached bool
}

// WellnessSnapshot 是心情打卡页面的只读快照。
type WellnessSnapshot struct {
	Moods   []model.Mood `json:"moods"`
	Mood    model.Mood   `json:"mood"`
	Advice  string       `json:"advice"`
	Loading bool         `json:"loading"`
	// RequestID 是最新一次请求的令牌。
	RequestID string `json:"requestId,omitempty"`
}

// NewWellness 创建一个未选择心情的打卡页面。
func NewWellness(gen service.GenerationService) *Wellness {
	return &Wellness{gen: gen}
}

func (w *Wellness) View() model.ViewType { return model.ViewWellness }

// SelectMood 记录心情并请求建议，直到该请求完成或被取代才返回。
func (w *Wellness) SelectMood(ctx context.Context, label string) error {
	mood, ok := model.ParseMood(label)
	if !ok {
		return fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, label)
	}

	reqCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()
	token := uuid.NewString()

	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	w.mood = mood
	w.loading = true
	w.token = token
	w.cancel = cancel
	w.mu.Unlock()

	advice, err := w.gen.WellnessAdvice(reqCtx, string(mood))

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.token != token {
		log.Infow("discarding superseded wellness advice", "requestId", token)
		return nil
	}
	w.cancel = nil
	w.loading = false
	if w.detached {
		return nil
	}
	if err != nil {
		log.Errorf("wellness advice failed: %v", err)
		advice = wellnessErrorAdvice
	}
	w.advice = advice
	return nil
}

// Snapshot 返回当前打卡页面状态的副本。
func (w *Wellness) Snapshot() WellnessSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WellnessSnapshot{
		Moods:     model.Moods,
		Mood:      w.mood,
		Advice:    w.advice,
		Loading:   w.loading,
		RequestID: w.token,
	}
}

func (w *Wellness) snapshot() interface{} { return w.Snapshot() }

func (w *Wellness) unmount() {
	w.mu.Lock()
	w.detached = true
	w.mu.Unlock()
}
