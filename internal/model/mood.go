package model

// Mood 是心情打卡的可选标签。
type Mood string

const (
	MoodStressed  Mood = "Stressed"
	MoodBurntOut  Mood = "Burnt Out"
	MoodNeutral   Mood = "Neutral"
	MoodMotivated Mood = "Motivated"
	MoodAnxious   Mood = "Anxious"
)

// Moods 按界面展示顺序列出全部心情。
var Moods = []Mood{MoodStressed, MoodBurntOut, MoodNeutral, MoodMotivated, MoodAnxious}

// ParseMood 校验并返回心情标签。
func ParseMood(s string) (Mood, bool) {
	for _, m := range Moods {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}
