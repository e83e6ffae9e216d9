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

// 新挂载的计划页面使用的初始表单值。
var defaultSubjects = []string{"Mathematics", "Computer Science"}

const defaultDailyHours = 4

// Planner 是学习计划页面的状态：科目列表、考试时间描述、每日学习时长和最近一次的计划。
type Planner struct {
	gen       service.GenerationService
	prefs     service.PreferenceService
	visitorID string

	mu         sync.Mutex
	subjects   []string
	examDates  string
	dailyHours int
	plan       *model.StudyPlan
	loading    bool
	detached   bool
}

// PlannerSnapshot 是计划页面的只读快照。
type PlannerSnapshot struct {
	Subjects   []string         `json:"subjects"`
	ExamDates  string           `json:"examDates"`
	DailyHours int              `json:"dailyHours"`
	Plan       *model.StudyPlan `json:"plan"`
	Loading    bool             `json:"loading"`
}

// NewPlanner 创建一个使用默认表单值的计划页面。
func NewPlanner(gen service.GenerationService, prefs service.PreferenceService, visitorID string) *Planner {
	subjects := make([]string, len(defaultSubjects))
	copy(subjects, defaultSubjects)
	return &Planner{
		gen:        gen,
		prefs:      prefs,
		visitorID:  visitorID,
		subjects:   subjects,
		dailyHours: defaultDailyHours,
	}
}

func (p *Planner) View() model.ViewType { return model.ViewStudyPlanner }

// Mount 恢复最近一次持久化的计划。
func (p *Planner) Mount(ctx context.Context) error {
	plan, err := p.prefs.LoadPlan(ctx, p.visitorID)
	if err != nil {
		return fmt.Errorf("failed to restore study plan: %w", err)
	}
	p.mu.Lock()
	p.plan = plan
	p.mu.Unlock()
	return nil
}

// AddSubject 追加去掉首尾空白的科目，不去重；全空白的输入被忽略。
func (p *Planner) AddSubject(subject string) {
	trimmed := strings.TrimSpace(subject)
	if trimmed == "" {
		return
	}
	p.mu.Lock()
	p.subjects = append(p.subjects, trimmed)
	p.mu.Unlock()
}

// RemoveSubject 按位置删除科目。
func (p *Planner) RemoveSubject(index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.subjects) {
		return fmt.Errorf("%w: subject index %d out of range", ErrInvalidInput, index)
	}
	p.subjects = append(p.subjects[:index:index], p.subjects[index+1:]...)
	return nil
}

// SetDeadline 设置考试时间的自由文本描述。
func (p *Planner) SetDeadline(text string) {
	p.mu.Lock()
	p.examDates = text
	p.mu.Unlock()
}

// SetDailyHours 设置每日学习时长，不做范围限制。
func (p *Planner) SetDailyHours(hours int) {
	p.mu.Lock()
	p.dailyHours = hours
	p.mu.Unlock()
}

// Generate 根据当前表单生成计划。成功时整体替换并持久化计划；
// 失败只记录日志，保留原有计划。页面卸载后完成的计划仍会被持久化。
func (p *Planner) Generate(ctx context.Context) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return ErrBusy
	}
	if len(p.subjects) == 0 || strings.TrimSpace(p.examDates) == "" {
		p.mu.Unlock()
		return ErrEmptyInput
	}
	subjects := make([]string, len(p.subjects))
	copy(subjects, p.subjects)
	examDates, hours := p.examDates, p.dailyHours
	p.loading = true
	p.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	plan, err := p.gen.GeneratePlan(ctx, subjects, examDates, hours)
	if err != nil {
		log.Errorf("study plan generation failed: %v", err)
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
		return nil
	}

	if err := p.prefs.SavePlan(ctx, p.visitorID, plan); err != nil {
		log.Errorf("failed to persist study plan: %v", err)
	}
	p.mu.Lock()
	p.loading = false
	if !p.detached {
		p.plan = plan
	}
	p.mu.Unlock()
	return nil
}

// Snapshot 返回当前计划页面状态的副本。
func (p *Planner) Snapshot() PlannerSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	subjects := make([]string, len(p.subjects))
	copy(subjects, p.subjects)
	return PlannerSnapshot{
		Subjects:   subjects,
		ExamDates:  p.examDates,
		DailyHours: p.dailyHours,
		Plan:       p.plan,
		Loading:    p.loading,
	}
}

func (p *Planner) snapshot() interface{} { return p.Snapshot() }

func (p *Planner) unmount() {
	p.mu.Lock()
	p.detached = true
	p.mu.Unlock()
}
