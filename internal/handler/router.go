package handler

import (
	"net/http"
	"scholar-ai-go/internal/controller"
	"scholar-ai-go/internal/middleware"
	"scholar-ai-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// NewRouter 创建路由引擎并注册所有路由。
func NewRouter(jwtManager *token.JWTManager, registry *controller.Registry) *gin.Engine {
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "ok", "data": gin.H{"workspaces": registry.Len()}})
	})

	chatHandler := NewChatHandler(jwtManager, registry)
	viewHandler := NewViewHandler()
	plannerHandler := NewPlannerHandler()
	assistantHandler := NewAssistantHandler()
	tasksHandler := NewTasksHandler()
	wellnessHandler := NewWellnessHandler()
	dashboardHandler := NewDashboardHandler()

	apiV1 := r.Group("/api/v1")
	{
		// 无需认证，签发访客 token
		apiV1.POST("/visitors", NewVisitorHandler(jwtManager).Create)

		// Chat 路由 (WebSocket)，token 通过路径传递
		apiV1.GET("/chat/ws/:token", chatHandler.Handle)

		authed := apiV1.Group("/")
		authed.Use(middleware.VisitorMiddleware(jwtManager, registry))
		{
			authed.GET("/view", viewHandler.GetPage)
			authed.PUT("/view/:view", viewHandler.Navigate)
			authed.GET("/theme", viewHandler.GetTheme)
			authed.PATCH("/theme", viewHandler.UpdateTheme)

			authed.GET("/dashboard", dashboardHandler.Get)

			authed.GET("/chat", chatHandler.Get)
			authed.POST("/chat/messages", chatHandler.SendMessage)

			planner := authed.Group("/planner")
			{
				planner.GET("", plannerHandler.Get)
				planner.POST("/subjects", plannerHandler.AddSubject)
				planner.DELETE("/subjects/:index", plannerHandler.RemoveSubject)
				planner.PUT("/form", plannerHandler.UpdateForm)
				planner.POST("/generate", plannerHandler.Generate)
			}

			assistant := authed.Group("/assistant")
			{
				assistant.GET("", assistantHandler.Get)
				assistant.PUT("/tab", assistantHandler.SetTab)
				assistant.POST("/explain", assistantHandler.Explain)
				assistant.POST("/resources", assistantHandler.Resources)
			}

			tasks := authed.Group("/tasks")
			{
				tasks.GET("", tasksHandler.List)
				tasks.POST("", tasksHandler.Create)
				tasks.PATCH("/:id/toggle", tasksHandler.Toggle)
				tasks.DELETE("/:id", tasksHandler.Delete)
			}

			wellness := authed.Group("/wellness")
			{
				wellness.GET("", wellnessHandler.Get)
				wellness.POST("/mood", wellnessHandler.SelectMood)
			}
		}
	}
	return r
}
