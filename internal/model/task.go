package model

// Priority 是截止任务的优先级，取值为封闭集合。
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities 按界面展示顺序列出全部优先级。
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid 判断优先级是否属于封闭集合。
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

// Task 代表用户录入的一条截止任务。
// ID 由毫秒时间戳生成，同一毫秒内重复提交可能冲突，这是已接受的边界情况。
type Task struct {
	ID        string   `json:"id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Deadline  string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Priority  Priority `json:"priority" validate:"oneof=Low Medium High"`
	Completed bool     `json:"completed"`
}
