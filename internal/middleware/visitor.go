// Package middleware 提供了处理 HTTP 请求的中间件。
package middleware

import (
	"net/http"
	"scholar-ai-go/internal/controller"
	"scholar-ai-go/pkg/log"
	"scholar-ai-go/pkg/token"
	"strings"

	"github.com/gin-gonic/gin"
)

// 存放在 gin.Context 中的键。
const (
	ContextVisitorID = "visitorId"
	ContextWorkspace = "workspace"
)

// VisitorMiddleware 创建一个 Gin 中间件，用于访客 JWT 认证。
// 它会从请求头中提取 token，验证其有效性，并把访客的工作区存入 Gin 的上下文中。
func VisitorMiddleware(jwtManager *token.JWTManager, registry *controller.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "请求未包含授权头", "data": nil})
			return
		}

		// Token 以 "Bearer <token>" 的形式提供
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "无效的授权头格式", "data": nil})
			return
		}
		claims, err := jwtManager.VerifyToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "无效或已过期的 token", "data": nil})
			return
		}

		ws, err := registry.Get(c.Request.Context(), claims.VisitorID)
		if err != nil {
			log.Errorf("failed to open workspace for visitor %s: %v", claims.VisitorID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "无法加载访客工作区", "data": nil})
			return
		}

		c.Set(ContextVisitorID, claims.VisitorID)
		c.Set(ContextWorkspace, ws)
		c.Next()
	}
}

// Workspace 取出 VisitorMiddleware 存入的工作区。
func Workspace(c *gin.Context) *controller.Workspace {
	v, _ := c.Get(ContextWorkspace)
	ws, _ := v.(*controller.Workspace)
	return ws
}
