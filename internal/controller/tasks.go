package controller

import (
	"context"
	"fmt"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/service"
	"scholar-ai-go/pkg/validation"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Tasks 是截止任务页面的状态。每次修改后都会整体持久化任务列表，不涉及生成调用。
type Tasks struct {
	prefs     service.PreferenceService
	visitorID string
	now       func() time.Time

	mu    sync.Mutex
	tasks []model.Task
}

// TasksSnapshot 是任务页面的只读快照。
type TasksSnapshot struct {
	Tasks        []model.Task `json:"tasks"`
	PendingCount int          `json:"pendingCount"`

	// Priorities 是新建任务时可选的优先级，按展示顺序排列。
	Priorities []model.Priority `json:"priorities"`
}

// NewTasksController 创建任务页面，挂载前列表为空。
func NewTasksController(prefs service.PreferenceService, visitorID string) *Tasks {
	return &Tasks{prefs: prefs, visitorID: visitorID, now: time.Now, tasks: []model.Task{}}
}

func (t *Tasks) View() model.ViewType { return model.ViewTasks }

// Mount 从存储中读取任务列表。
func (t *Tasks) Mount(ctx context.Context) error {
	tasks, err := t.prefs.LoadTasks(ctx, t.visitorID)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	t.mu.Lock()
	t.tasks = tasks
	t.mu.Unlock()
	return nil
}

// Add 追加一条未完成的任务，ID 取当前毫秒时间戳，优先级为空时默认为 Medium。
func (t *Tasks) Add(ctx context.Context, title, deadline string, priority model.Priority) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyInput
	}
	if priority == "" {
		priority = model.PriorityMedium
	}
	task := model.Task{
		ID:       strconv.FormatInt(t.now().UnixMilli(), 10),
		Title:    title,
		Deadline: strings.TrimSpace(deadline),
		Priority: priority,
	}
	if err := validation.Struct(task); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks = append(t.tasks, task)
	return task, t.persistLocked(ctx)
}

// Toggle 翻转任务的完成状态。
func (t *Tasks) Toggle(ctx context.Context, id string) (model.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexLocked(id)
	if i < 0 {
		return model.Task{}, ErrTaskNotFound
	}
	t.tasks[i].Completed = !t.tasks[i].Completed
	return t.tasks[i], t.persistLocked(ctx)
}

// Delete 按 ID 删除任务。
func (t *Tasks) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexLocked(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	t.tasks = append(t.tasks[:i:i], t.tasks[i+1:]...)
	return t.persistLocked(ctx)
}

func (t *Tasks) indexLocked(id string) int {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *Tasks) persistLocked(ctx context.Context) error {
	if err := t.prefs.SaveTasks(ctx, t.visitorID, t.tasks); err != nil {
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	return nil
}

// Snapshot 返回当前任务列表的副本。
func (t *Tasks) Snapshot() TasksSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	tasks := make([]model.Task, len(t.tasks))
	copy(tasks, t.tasks)
	pending := 0
	for _, task := range tasks {
		if !task.Completed {
			pending++
		}
	}
	return TasksSnapshot{Tasks: tasks, PendingCount: pending, Priorities: model.Priorities}
}

func (t *Tasks) snapshot() interface{} { return t.Snapshot() }

// 任务修改是同步完成的，卸载时没有需要丢弃的结果。
func (t *Tasks) unmount() {}
