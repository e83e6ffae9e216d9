package model

// ScheduleItem 是学习计划中的一个时间块，没有独立身份。
type ScheduleItem struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Topic    string `json:"topic"`
}

// StudyPlan 是一次成功生成的周计划，整体持久化、整体覆盖。
// Schedule 的顺序完全保留生成结果，不做重排或校验。
type StudyPlan struct {
	Subjects   []string       `json:"subjects"`
	ExamDates  string         `json:"examDates"`
	DailyHours float64        `json:"dailyHours"`
	Schedule   []ScheduleItem `json:"schedule"`
}

// HasSchedule 判断计划是否真正产出了排期，空排期按“没有计划”渲染。
func (p *StudyPlan) HasSchedule() bool {
	return p != nil && len(p.Schedule) > 0
}
