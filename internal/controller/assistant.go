package controller

import (
	"context"
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/service"
	"scholar-ai-go/pkg/log"
	"strings"
	"sync"
)

// AssistantTab 是学习助手页面的两个标签页。
type AssistantTab string

const (
	TabExplain   AssistantTab = "Explain"
	TabResources AssistantTab = "Resources"
)

// Assistant 是学习助手页面的状态。两个功能共用一个 Loading 标记。
type Assistant struct {
	gen service.GenerationService

	mu          sync.Mutex
	tab         AssistantTab
	concept     string
	explanation string
	resources   *model.StudyResources
	loading     bool
	detached    bool
}

// AssistantSnapshot 是学习助手页面的只读快照。
type AssistantSnapshot struct {
	Tab AssistantTab `json:"tab"`
	// Concept 是 Explanation 对应的概念文本。
	Concept     string                `json:"concept"`
	Explanation string                `json:"explanation"`
	Resources   *model.StudyResources `json:"resources"`
	Loading     bool                  `json:"loading"`
}

// NewAssistant 创建一个停在 Explain 标签页的学习助手页面。
func NewAssistant(gen service.GenerationService) *Assistant {
	return &Assistant{gen: gen, tab: TabExplain}
}

func (a *Assistant) View() model.ViewType { return model.ViewStudyAssistant }

// SetTab 切换标签页，不影响已有结果。
func (a *Assistant) SetTab(tab AssistantTab) error {
	switch tab {
	case TabExplain, TabResources:
	default:
		return fmt.Errorf("%w: unknown tab %q", ErrInvalidInput, tab)
	}
	a.mu.Lock()
	a.tab = tab
	a.mu.Unlock()
	return nil
}

// Explain 请求解释一个概念，失败时保留原有解释。
func (a *Assistant) Explain(ctx context.Context, concept string) error {
	if strings.TrimSpace(concept) == "" {
		return ErrEmptyInput
	}
	if err := a.begin(); err != nil {
		return err
	}
	text, err := a.gen.ExplainConcept(context.WithoutCancel(ctx), concept)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	if err != nil {
		log.Errorf("concept explanation failed: %v", err)
		return nil
	}
	if !a.detached {
		a.concept = concept
		a.explanation = text
	}
	return nil
}

// Resources 根据笔记生成摘要与测验，二者总是一起替换；失败时保留原有结果。
func (a *Assistant) Resources(ctx context.Context, notes string) error {
	if strings.TrimSpace(notes) == "" {
		return ErrEmptyInput
	}
	if err := a.begin(); err != nil {
		return err
	}
	res, err := a.gen.SummarizeAndQuiz(context.WithoutCancel(ctx), notes)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	if err != nil {
		log.Errorf("study resources generation failed: %v", err)
		return nil
	}
	if res.Quiz == nil {
		res.Quiz = []model.QuizQuestion{}
	}
	if !a.detached {
		a.resources = res
	}
	return nil
}

func (a *Assistant) begin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loading {
		return ErrBusy
	}
	a.loading = true
	return nil
}

// Snapshot 返回当前学习助手状态的副本。
func (a *Assistant) Snapshot() AssistantSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AssistantSnapshot{
		Tab:         a.tab,
		Concept:     a.concept,
		Explanation: a.explanation,
		Resources:   a.resources,
		Loading:     a.loading,
	}
}

func (a *Assistant) snapshot() interface{} { return a.Snapshot() }

func (a *Assistant) unmount() {
	a.mu.Lock()
	a.detached = true
	a.mu.Unlock()
}
