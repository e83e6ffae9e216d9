package model

// QuizQuestion 是一道由笔记生成的练习题，仅存在于视图状态中。
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// StudyResources 是笔记转学习资源的完整结果：摘要与测验一起替换。
type StudyResources struct {
	Summary string         `json:"summary"`
	Quiz    []QuizQuestion `json:"quiz"`
}
