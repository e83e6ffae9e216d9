package handler

import (
	"scholar-ai-go/internal/middleware"
	"scholar-ai-go/internal/render"

	"github.com/gin-gonic/gin"
)

// WellnessHandler 负责心情打卡页面。
type WellnessHandler struct{}

// NewWellnessHandler 创建一个新的 WellnessHandler 实例。
func NewWellnessHandler() *WellnessHandler {
	return &WellnessHandler{}
}

type selectMoodRequest struct {
	Mood string `json:"mood" binding:"required"`
}

// Get 返回心情打卡页面快照。
func (h *WellnessHandler) Get(c *gin.Context) {
	w, err := middleware.Workspace(c).Wellness()
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(w.Snapshot()))
}

// SelectMood 选择心情并等待建议。被更新的选择取代时返回的快照仍处于 loading。
func (h *WellnessHandler) SelectMood(c *gin.Context) {
	var req selectMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	w, err := middleware.Workspace(c).Wellness()
	if err != nil {
		failWith(c, err)
		return
	}
	if err := w.SelectMood(c.Request.Context(), req.Mood); err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(w.Snapshot()))
}
