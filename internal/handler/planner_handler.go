package handler

import (
	"net/http"
	"scholar-ai-go/internal/middleware"
	"scholar-ai-go/internal/render"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PlannerHandler 负责学习计划页面。
type PlannerHandler struct{}

// NewPlannerHandler 创建一个新的 PlannerHandler 实例。
func NewPlannerHandler() *PlannerHandler {
	return &PlannerHandler{}
}

// AddSubjectRequest 定义了添加科目的请求体结构。
type AddSubjectRequest struct {
	Subject string `json:"subject"`
}

// PlannerFormRequest 定义了更新表单的请求体结构，缺省字段保持不变。
type PlannerFormRequest struct {
	ExamDates  *string `json:"examDates"`
	DailyHours *int    `json:"dailyHours"`
}

// Get 返回计划页面快照。
func (h *PlannerHandler) Get(c *gin.Context) {
	p, err := middleware.Workspace(c).Planner()
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(p.Snapshot()))
}

// AddSubject 追加一个科目，全空白输入被忽略。
func (h *PlannerHandler) AddSubject(c *gin.Context) {
	var req AddSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := middleware.Workspace(c).Planner()
	if err != nil {
		failWith(c, err)
		return
	}
	p.AddSubject(req.Subject)
	success(c, render.Body(p.Snapshot()))
}

// RemoveSubject 按位置删除科目。
func (h *PlannerHandler) RemoveSubject(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		fail(c, http.StatusBadRequest, "无效的科目序号")
		return
	}
	p, err := middleware.Workspace(c).Planner()
	if err != nil {
		failWith(c, err)
		return
	}
	if err := p.RemoveSubject(index); err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(p.Snapshot()))
}

// UpdateForm 更新考试时间描述与每日学习时长。
func (h *PlannerHandler) UpdateForm(c *gin.Context) {
	var req PlannerFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := middleware.Workspace(c).Planner()
	if err != nil {
		failWith(c, err)
		return
	}
	if req.ExamDates != nil {
		p.SetDeadline(*req.ExamDates)
	}
	if req.DailyHours != nil {
		p.SetDailyHours(*req.DailyHours)
	}
	success(c, render.Body(p.Snapshot()))
}

// Generate 根据当前表单生成计划。生成失败时仍返回 200 和原有计划。
func (h *PlannerHandler) Generate(c *gin.Context) {
	p, err := middleware.Workspace(c).Planner()
	if err != nil {
		failWith(c, err)
		return
	}
	if err := p.Generate(c.Request.Context()); err != nil {
		failWith(c, err)
		return
	}
	success(c, render.Body(p.Snapshot()))
}
