package model

// ViewType 标识六个可导航的页面之一。
type ViewType string

const (
	ViewDashboard      ViewType = "Dashboard"
	ViewChat           ViewType = "Chat"
	ViewStudyPlanner   ViewType = "StudyPlanner"
	ViewStudyAssistant ViewType = "StudyAssistant"
	ViewTasks          ViewType = "Tasks"
	ViewWellness       ViewType = "Wellness"
)

// Views 按侧边栏顺序列出全部页面。
var Views = []ViewType{ViewDashboard, ViewChat, ViewStudyPlanner, ViewStudyAssistant, ViewTasks, ViewWellness}

// ParseView 校验并返回页面标识。
func ParseView(s string) (ViewType, bool) {
	for _, v := range Views {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// Label 返回侧边栏上展示的名称。
func (v ViewType) Label() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewChat:
		return "AI Coach"
	case ViewStudyPlanner:
		return "Study Planner"
	case ViewStudyAssistant:
		return "Study Lab"
	case ViewTasks:
		return "Deadlines"
	case ViewWellness:
		return "Well-being"
	}
	return string(v)
}
