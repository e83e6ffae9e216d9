package controller

import (
	"context"
	"errors"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/repository"
	"scholar-ai-go/internal/service"
	"sync"
)

var errUnavailable = errors.New("service unavailable")

// fakeGeneration 返回预设的结果。gate 非空时每次调用都会阻塞，直到从 gate 收到一个值。
type fakeGeneration struct {
	mu      sync.Mutex
	calls   []string
	started chan string
	gate    chan struct{}

	chat        string
	plan        *model.StudyPlan
	explanation string
	resources   *model.StudyResources
	advice      func(mood string) string
	err         error
}

func (f *fakeGeneration) enter(ctx context.Context, name string) error {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- name
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func (f *fakeGeneration) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGeneration) ChatReply(ctx context.Context, _ []model.ChatMessage, _ string) (string, error) {
	if err := f.enter(ctx, "chat"); err != nil {
		return "", err
	}
	return f.chat, nil
}

func (f *fakeGeneration) GeneratePlan(ctx context.Context, _ []string, _ string, _ int) (*model.StudyPlan, error) {
	if err := f.enter(ctx, "plan"); err != nil {
		return nil, err
	}
	return f.plan, nil
}

func (f *fakeGeneration) ExplainConcept(ctx context.Context, _ string) (string, error) {
	if err := f.enter(ctx, "explain"); err != nil {
		return "", err
	}
	return f.explanation, nil
}

func (f *fakeGeneration) SummarizeAndQuiz(ctx context.Context, _ string) (*model.StudyResources, error) {
	if err := f.enter(ctx, "resources"); err != nil {
		return nil, err
	}
	return f.resources, nil
}

func (f *fakeGeneration) WellnessAdvice(ctx context.Context, mood string) (string, error) {
	if err := f.enter(ctx, "wellness:"+mood); err != nil {
		return "", err
	}
	if f.advice != nil {
		return f.advice(mood), nil
	}
	return "advice for " + mood, nil
}

func newPrefs() service.PreferenceService {
	return service.NewPreferenceService(repository.NewMemoryPreferenceRepository())
}
