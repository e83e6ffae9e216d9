package model

import "time"

// 三条相互独立的偏好记录键，与浏览器端 localStorage 的键保持一致。
const (
	PreferenceKeyTheme = "scholar_theme"
	PreferenceKeyTasks = "scholar_tasks"
	PreferenceKeyPlan  = "study_plan"
)

// Preference 是一条按访客隔离的键值记录，Value 为整体读写的 JSON 文本。
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VisitorID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_visitor_key" json:"visitorId"`
	Key       string    `gorm:"column:pref_key;type:varchar(64);not null;uniqueIndex:idx_visitor_key" json:"key"`
	Value     string    `gorm:"type:longtext;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Preference) TableName() string {
	return "preferences"
}
