package handler

import (
	"scholar-ai-go/internal/controller"
	"scholar-ai-go/internal/middleware"
	"scholar-ai-go/internal/render"

	"github.com/gin-gonic/gin"
)

// AssistantHandler 负责学习助手页面。
type AssistantHandler struct{}

// NewAssistantHandler 创建一个新的 AssistantHandler 实例。
func NewAssistantHandler() *AssistantHandler {
	return &AssistantHandler{}
}

type setTabRequest struct {
	Tab controller.AssistantTab `json:"tab" binding:"required"`
}

type explainRequest struct {
	Concept string `json:"concept"`
}

type resourcesRequest struct {
	Notes string `json:"notes"`
}

// Get 返回学习助手页面快照。
func (h *AssistantHandler) Get(c *gin.Context) {
	a, err := middleware.Workspace(c).Assistant()
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(a.Snapshot()))
}

// SetTab 切换标签页。
func (h *AssistantHandler) SetTab(c *gin.Context) {
	var req setTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	a, err := middleware.Workspace(c).Assistant()
	if err != nil {
		failWith(c, err)
		return
	}
	if err := a.SetTab(req.Tab); err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(a.Snapshot()))
}

// Explain 请求解释一个概念。
func (h *AssistantHandler) Explain(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	a, err := middleware.Workspace(c).Assistant()
	if err != nil {
		failWith(c, err)
		return
	}
	if err := a.Explain(c.Request.Context(), req.Concept); err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(a.Snapshot()))
}

// Resources 根据笔记生成摘要与测验。
func (h *AssistantHandler) Resources(c *gin.Context) {
	var req resourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	a, err := middleware.Workspace(c).Assistant()
	if err != nil {
		failWith(c, err)
		return
	}
	if err := a.Resources(c.Request.Context(), req.Notes); err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(a.Snapshot()))
}
