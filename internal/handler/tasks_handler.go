package handler

import (
	"scholar-ai-go/internal/middleware"
	"scholar-ai-go/internal/model"

	"github.com/gin-gonic/gin"
)

// TasksHandler 负责截止任务页面。
type TasksHandler struct{}

// NewTasksHandler 创建一个新的 TasksHandler 实例。
func NewTasksHandler() *TasksHandler {
	return &TasksHandler{}
}

// CreateTaskRequest 定义了新建任务的请求体结构。
type CreateTaskRequest struct {
	Title    string         `json:"title"`
	Deadline string         `json:"deadline"`
	Priority model.Priority `json:"priority"`
}

// List 返回任务页面快照。
func (h *TasksHandler) List(c *gin.Context) {
	t, err := middleware.Workspace(c).Tasks()
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, t.Snapshot())
}

// Create 新建一条任务。
func (h *TasksHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := middleware.Workspace(c).Tasks()
	if err != nil {
		failWith(c, err)
		return
	}
	if _, err := t.Add(c.Request.Context(), req.Title, req.Deadline, req.Priority); err != nil {
		failWith(c, err)
		return
	}
	success(c, t.Snapshot())
}

// Toggle 翻转任务的完成状态。
func (h *TasksHandler) Toggle(c *gin.Context) {
	t, err := middleware.Workspace(c).Tasks()
	if err != nil {
		failWith(c, err)
		return
	}
	if _, err := t.Toggle(c.Request.Context(), c.Param("id")); err != nil {
		failWith(c, err)
		return
	}
	success(c, t.Snapshot())
}

// Delete 删除任务。
func (h *TasksHandler) Delete(c *gin.Context) {
	t, err := middleware.Workspace(c).Tasks()
	if err != nil {
		failWith(c, err)
		return
	}
	if err := t.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failWith(c, err)
		return
	}
	success(c, t.Snapshot())
}
