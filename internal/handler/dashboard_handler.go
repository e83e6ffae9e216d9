package handler

import (
	"scholar-ai-go/internal/middleware"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 负责首页汇总。
type DashboardHandler struct{}

// NewDashboardHandler 创建一个新的 DashboardHandler 实例。
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Get 返回首页汇总，数据在进入首页时从偏好存储读取。
func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := middleware.Workspace(c).Dashboard()
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, d.Snapshot())
}
