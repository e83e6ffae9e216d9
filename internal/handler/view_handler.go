package handler

import (
	"net/http"
	"scholar-ai-go/internal/middleware"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/render"

	"github.com/gin-gonic/gin"
)

// ViewHandler 负责页面切换、主题设置和整页渲染。
type ViewHandler struct{}

// NewViewHandler 创建一个新的 ViewHandler 实例。
func NewViewHandler() *ViewHandler {
	return &ViewHandler{}
}

func page(c *gin.Context) render.Page {
	ws := middleware.Workspace(c)
	view, body := ws.Body()
	return render.Render(render.PageInput{View: view, Theme: ws.Theme(), Body: body})
}

// GetPage 返回当前页面的完整渲染模型。
func (h *ViewHandler) GetPage(c *gin.Context) {
	success(c, page(c))
}

// Navigate 切换到路径参数指定的页面。
func (h *ViewHandler) Navigate(c *gin.Context) {
	view, ok := model.ParseView(c.Param("view"))
	if !ok {
		fail(c, http.StatusBadRequest, "未知的页面: "+c.Param("view"))
		return
	}
	if err := middleware.Workspace(c).Navigate(c.Request.Context(), view); err != nil {
		failWith(c, err)
		return
	}
	success(c, page(c))
}

// GetTheme 返回当前主题设置。
func (h *ViewHandler) GetTheme(c *gin.Context) {
	theme := middleware.Workspace(c).Theme()
	success(c, gin.H{"theme": theme, "displayMode": theme.DisplayMode()})
}

// UpdateTheme 合并更新主题设置，请求体中缺省的字段保持不变。
func (h *ViewHandler) UpdateTheme(c *gin.Context) {
	var patch model.ThemePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	theme, err := middleware.Workspace(c).UpdateTheme(c.Request.Context(), patch)
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, gin.H{"theme": theme, "displayMode": theme.DisplayMode()})
}
