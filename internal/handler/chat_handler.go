package handler

import (
	"encoding/json"
	"net/http"
	"scholar-ai-go/internal/controller"
	"scholar-ai-go/internal/middleware"
	"scholar-ai-go/pkg/log"
	"scholar-ai-go/pkg/token"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // 允许所有来源
		},
	}
)

// ChatHandler 负责对话页面的 REST 接口和 WebSocket 连接。
type ChatHandler struct {
	jwtManager *token.JWTManager
	registry   *controller.Registry
}

// NewChatHandler 创建一个新的 ChatHandler。
func NewChatHandler(jwtManager *token.JWTManager, registry *controller.Registry) *ChatHandler {
	return &ChatHandler{jwtManager: jwtManager, registry: registry}
}

// SendMessageRequest 定义了发送消息的请求体结构。
type SendMessageRequest struct {
	Content string `json:"content"`
}

// Get 返回对话页面快照。
func (h *ChatHandler) Get(c *gin.Context) {
	chat, err := middleware.Workspace(c).Chat()
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, chat.Snapshot())
}

// SendMessage 发送一条消息并等待回复，返回更新后的快照。
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	chat, err := middleware.Workspace(c).Chat()
	if err != nil {
		failWith(c, err)
		return
	}
	if _, err := chat.Send(c.Request.Context(), req.Content); err != nil {
		failWith(c, err)
		return
	}
	success(c, chat.Snapshot())
}

// Handle 处理一个传入的 WebSocket 连接。
// 每条文本消息（纯文本或 {"content": "..."}）依次推送 loading、message、completion 三个事件。
func (h *ChatHandler) Handle(c *gin.Context) {
	claims, err := h.jwtManager.VerifyToken(c.Param("token"))
	if err != nil {
		fail(c, http.StatusUnauthorized, "无效的 token")
		return
	}
	ws, err := h.registry.Get(c.Request.Context(), claims.VisitorID)
	if err != nil {
		log.Errorf("failed to open workspace for visitor %s: %v", claims.VisitorID, err)
		fail(c, http.StatusInternalServerError, "无法加载访客工作区")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket 升级失败", err)
		return
	}
	defer conn.Close()

	log.Infof("WebSocket 连接已建立，访客: %s", ws.VisitorID())

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Warnf("从 WebSocket 读取消息失败，访客: %s, error: %v", ws.VisitorID(), err)
			break
		}
		ws.Touch(time.Now())

		content := string(message)
		var payload SendMessageRequest
		if len(message) > 0 && message[0] == '{' {
			if err := json.Unmarshal(message, &payload); err == nil {
				content = payload.Content
			}
		}

		chat, err := ws.Chat()
		if err != nil {
			writeEvent(conn, gin.H{"type": "error", "message": err.Error()})
			continue
		}

		writeEvent(conn, gin.H{"type": "loading"})
		reply, err := chat.Send(c.Request.Context(), content)
		if err != nil {
			writeEvent(conn, gin.H{"type": "error", "message": err.Error()})
			continue
		}
		writeEvent(conn, gin.H{"type": "message", "message": reply})
		sendCompletion(conn)
	}
}

func writeEvent(conn *websocket.Conn, event gin.H) {
	b, _ := json.Marshal(event)
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		log.Warnf("写入 WebSocket 消息失败: %v", err)
	}
}

func sendCompletion(conn *websocket.Conn) {
	writeEvent(conn, gin.H{
		"type":      "completion",
		"status":    "finished",
		"message":   "响应已完成",
		"timestamp": time.Now().UnixMilli(),
		"date":      time.Now().Format("2006-01-02T15:04:05"),
	})
}

