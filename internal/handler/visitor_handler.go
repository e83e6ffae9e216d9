package handler

import (
	"net/http"
	"scholar-ai-go/pkg/log"
	"scholar-ai-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorHandler 负责签发匿名访客 token。
type VisitorHandler struct {
	jwtManager *token.JWTManager
}

// NewVisitorHandler 创建一个新的 VisitorHandler 实例。
func NewVisitorHandler(jwtManager *token.JWTManager) *VisitorHandler {
	return &VisitorHandler{jwtManager: jwtManager}
}

// Create 生成新的访客 ID 并返回对应的 token。
func (h *VisitorHandler) Create(c *gin.Context) {
	visitorID := uuid.NewString()
	tok, err := h.jwtManager.GenerateToken(visitorID)
	if err != nil {
		log.Error("failed to sign visitor token", err)
		fail(c, http.StatusInternalServerError, "无法签发访客 token")
		return
	}
	log.Infof("visitor %s created", visitorID)
	success(c, gin.H{"visitorId": visitorID, "token": tok})
}
