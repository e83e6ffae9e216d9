package controller

import (
	"context"
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/service"
	"sync"
	"time"
)

// mountable 是可以挂载到工作区的页面。
type mountable interface {
	View() model.ViewType
	snapshot() interface{}
	unmount()
}

// Workspace 是一个访客的应用上下文：当前页面、主题设置以及唯一挂载的页面状态。
// 切换页面会卸载旧页面并挂载一个全新的实例，持久化的页面在挂载时重新读取存储。
type Workspace struct {
	visitorID string
	prefs     service.PreferenceService
	gen       service.GenerationService

	mu       sync.Mutex
	theme    model.ThemeSettings
	view     model.ViewType
	mounted  mountable
	lastSeen time.Time
}

// NewWorkspace 读取访客的主题设置并挂载首页。
func NewWorkspace(ctx context.Context, visitorID string, prefs service.PreferenceService, gen service.GenerationService) (*Workspace, error) {
	theme, err := prefs.LoadTheme(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	ws := &Workspace{
		visitorID: visitorID,
		prefs:     prefs,
		gen:       gen,
		theme:     theme,
		lastSeen:  time.Now(),
	}
	if err := ws.Navigate(ctx, model.ViewDashboard); err != nil {
		return nil, err
	}
	return ws, nil
}

// VisitorID 返回工作区所属的访客。
func (w *Workspace) VisitorID() string { return w.visitorID }

// Navigate 切换到目标页面。目标与当前页面相同时不做任何事。
func (w *Workspace) Navigate(ctx context.Context, view model.ViewType) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mounted != nil && w.view == view {
		return nil
	}

	next, err := w.build(ctx, view)
	if err != nil {
		return err
	}
	if w.mounted != nil {
		w.mounted.unmount()
	}
	w.view = view
	w.mounted = next
	return nil
}

func (w *Workspace) build(ctx context.Context, view model.ViewType) (mountable, error) {
	switch view {
	case model.ViewDashboard:
		d := NewDashboard(w.prefs, w.visitorID)
		if err := d.Mount(ctx); err != nil {
			return nil, err
		}
		return d, nil
	case model.ViewChat:
		return NewChat(w.gen), nil
	case model.ViewStudyPlanner:
		p := NewPlanner(w.gen, w.prefs, w.visitorID)
		if err := p.Mount(ctx); err != nil {
			return nil, err
		}
		return p, nil
	case model.ViewStudyAssistant:
		return NewAssistant(w.gen), nil
	case model.ViewTasks:
		t := NewTasksController(w.prefs, w.visitorID)
		if err := t.Mount(ctx); err != nil {
			return nil, err
		}
		return t, nil
	case model.ViewWellness:
		return NewWellness(w.gen), nil
	}
	return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, view)
}

// View 返回当前页面。
func (w *Workspace) View() model.ViewType {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view
}

// Theme 返回当前主题设置。
func (w *Workspace) Theme() model.ThemeSettings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.theme
}

// UpdateTheme 只合并 patch 中给出的字段，并立即持久化完整的设置。
func (w *Workspace) UpdateTheme(ctx context.Context, patch model.ThemePatch) (model.ThemeSettings, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.theme.Merge(patch)
	if err := next.Validate(); err != nil {
		return w.theme, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := w.prefs.SaveTheme(ctx, w.visitorID, next); err != nil {
		return w.theme, fmt.Errorf("failed to persist theme: %w", err)
	}
	w.theme = next
	return next, nil
}

// Body 返回当前挂载页面的快照。
func (w *Workspace) Body() (model.ViewType, interface{}) {
	w.mu.Lock()
	m := w.mounted
	view := w.view
	w.mu.Unlock()
	return view, m.snapshot()
}

// Chat 返回已挂载的对话页面。
func (w *Workspace) Chat() (*Chat, error) { return mountedAs[*Chat](w) }

// Planner 返回已挂载的计划页面。
func (w *Workspace) Planner() (*Planner, error) { return mountedAs[*Planner](w) }

// Assistant 返回已挂载的学习助手页面。
func (w *Workspace) Assistant() (*Assistant, error) { return mountedAs[*Assistant](w) }

// Tasks 返回已挂载的任务页面。
func (w *Workspace) Tasks() (*Tasks, error) { return mountedAs[*Tasks](w) }

// Wellness 返回已挂载的心情打卡页面。
func (w *Workspace) Wellness() (*Wellness, error) { return mountedAs[*Wellness](w) }

// Dashboard 返回已挂载的首页。
func (w *Workspace) Dashboard() (*Dashboard, error) { return mountedAs[*Dashboard](w) }

func mountedAs[T mountable](w *Workspace) (T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.mounted.(T)
	if !ok {
		var zero T
		return zero, ErrViewNotMounted
	}
	return c, nil
}

// Touch 记录一次访问。
func (w *Workspace) Touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

// LastSeen 返回最近一次访问的时间。
func (w *Workspace) LastSeen() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Close 卸载当前页面，之后完成的请求结果都会被丢弃。
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mounted != nil {
		w.mounted.unmount()
	}
}
