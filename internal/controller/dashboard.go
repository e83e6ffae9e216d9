package controller

import (
	"context"
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/service"
	"sync"
	"time"
)

// 首页快捷入口的目标页面。
var dashboardShortcuts = []model.ViewType{model.ViewChat, model.ViewStudyAssistant, model.ViewWellness}

// Dashboard 是首页，挂载时汇总已持久化的任务与计划，只读。
type Dashboard struct {
	prefs     service.PreferenceService
	visitorID string
	now       func() time.Time

	mu      sync.Mutex
	summary DashboardSnapshot
}

// DashboardSnapshot 是首页的只读快照。
type DashboardSnapshot struct {
	PendingTasks        int `json:"pendingTasks"`
	CompletedTasks      int `json:"completedTasks"`
	HighPriorityPending int `json:"highPriorityPending"`
	// NextDeadline 是今天及以后最早到期的未完成任务。
	NextDeadline *model.Task      `json:"nextDeadline"`
	HasPlan      bool             `json:"hasPlan"`
	PlanSessions int              `json:"planSessions"`
	DailyHours   float64          `json:"dailyHours"`
	Shortcuts    []model.ViewType `json:"shortcuts"`
}

// NewDashboard 创建首页。
func NewDashboard(prefs service.PreferenceService, visitorID string) *Dashboard {
	return &Dashboard{
		prefs:     prefs,
		visitorID: visitorID,
		now:       time.Now,
		summary:   DashboardSnapshot{Shortcuts: dashboardShortcuts},
	}
}

func (d *Dashboard) View() model.ViewType { return model.ViewDashboard }

// Mount 读取任务与计划并计算汇总。
func (d *Dashboard) Mount(ctx context.Context) error {
	tasks, err := d.prefs.LoadTasks(ctx, d.visitorID)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	plan, err := d.prefs.LoadPlan(ctx, d.visitorID)
	if err != nil {
		return fmt.Errorf("failed to load study plan: %w", err)
	}

	summary := summarize(tasks, plan, d.now().Format("2006-01-02"))
	d.mu.Lock()
	d.summary = summary
	d.mu.Unlock()
	return nil
}

func summarize(tasks []model.Task, plan *model.StudyPlan, today string) DashboardSnapshot {
	s := DashboardSnapshot{Shortcuts: dashboardShortcuts}
	for i := range tasks {
		task := tasks[i]
		if task.Completed {
			s.CompletedTasks++
			continue
		}
		s.PendingTasks++
		if task.Priority == model.PriorityHigh {
			s.HighPriorityPending++
		}
		// YYYY-MM-DD 的字典序与日期顺序一致
		if task.Deadline != "" && task.Deadline >= today {
			if s.NextDeadline == nil || task.Deadline < s.NextDeadline.Deadline {
				s.NextDeadline = &task
			}
		}
	}
	if plan.HasSchedule() {
		s.HasPlan = true
		s.PlanSessions = len(plan.Schedule)
		s.DailyHours = plan.DailyHours
	}
	return s
}

// Snapshot 返回首页汇总。
func (d *Dashboard) Snapshot() DashboardSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary
}

func (d *Dashboard) snapshot() interface{} { return d.Snapshot() }

func (d *Dashboard) unmount() {}
