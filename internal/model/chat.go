// Package model 包含了应用的数据模型定义。
package model

// Role 标识对话中的发言方。
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage 代表学习教练对话中的一轮发言，只保存在会话内存中。
type ChatMessage struct {
	Role      Role      `json:"role"` // "user" 或 "model"
	Content   string    `json:"content"`
	Timestamp LocalTime `json:"timestamp"`
}
