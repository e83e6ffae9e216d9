package model

import "fmt"

// Accent 是封闭的五种主题色之一。
type Accent string

const (
	AccentViolet  Accent = "violet"
	AccentEmerald Accent = "emerald"
	AccentRose    Accent = "rose"
	AccentBlue    Accent = "blue"
	AccentAmber   Accent = "amber"
)

// Accents 按调色板顺序列出全部主题色。
var Accents = []Accent{AccentViolet, AccentEmerald, AccentRose, AccentBlue, AccentAmber}

// ThemeSettings 是显示偏好：暗色模式与主题色。
type ThemeSettings struct {
	DarkMode bool   `json:"darkMode"`
	Accent   Accent `json:"accent"`
}

// DefaultTheme 返回首次访问时使用的默认主题。
func DefaultTheme() ThemeSettings {
	return ThemeSettings{DarkMode: false, Accent: AccentViolet}
}

// ThemePatch 描述一次主题修改，nil 字段保持原值。
type ThemePatch struct {
	DarkMode *bool   `json:"darkMode"`
	Accent   *Accent `json:"accent"`
}

// Merge 只覆盖 patch 中给出的字段。
func (t ThemeSettings) Merge(p ThemePatch) ThemeSettings {
	if p.DarkMode != nil {
		t.DarkMode = *p.DarkMode
	}
	if p.Accent != nil {
		t.Accent = *p.Accent
	}
	return t
}

// Validate 确保主题色属于封闭集合。
func (t ThemeSettings) Validate() error {
	if _, ok := t.Accent.Style(); !ok {
		return fmt.Errorf("未知的主题色 %q", t.Accent)
	}
	return nil
}

// DisplayMode 返回渲染层使用的全局显示模式。
func (t ThemeSettings) DisplayMode() string {
	if t.DarkMode {
		return "dark"
	}
	return "light"
}

// AccentStyle 是一个主题色在渲染层对应的全部样式记号。
type AccentStyle struct {
	Primary  string `json:"primary"`
	Hover    string `json:"hover"`
	Text     string `json:"text"`
	Light    string `json:"light"`
	Gradient string `json:"gradient"`
	Shadow   string `json:"shadow"`
	Swatch   string `json:"swatch"`
}

// Style 把主题色映射为样式记号。switch 必须覆盖全部取值，新增主题色时在这里补齐。
// 未知取值返回 violet 的样式与 ok=false。
func (a Accent) Style() (AccentStyle, bool) {
	switch a {
	case AccentViolet:
		return AccentStyle{
			Primary:  "bg-violet-600",
			Hover:    "hover:bg-violet-700",
			Text:     "text-violet-600",
			Light:    "bg-violet-50 dark:bg-violet-900/20",
			Gradient: "from-violet-600 to-indigo-600",
			Shadow:   "shadow-violet-200 dark:shadow-violet-900/20",
			Swatch:   "bg-violet-500",
		}, true
	case AccentEmerald:
		return AccentStyle{
			Primary:  "bg-emerald-600",
			Hover:    "hover:bg-emerald-700",
			Text:     "text-emerald-600",
			Light:    "bg-emerald-50 dark:bg-emerald-900/20",
			Gradient: "from-emerald-600 to-teal-600",
			Shadow:   "shadow-emerald-200 dark:shadow-emerald-900/20",
			Swatch:   "bg-emerald-500",
		}, true
	case AccentRose:
		return AccentStyle{
			Primary:  "bg-rose-600",
			Hover:    "hover:bg-rose-700",
			Text:     "text-rose-600",
			Light:    "bg-rose-50 dark:bg-rose-900/20",
			Gradient: "from-rose-600 to-pink-600",
			Shadow:   "shadow-rose-200 dark:shadow-rose-900/20",
			Swatch:   "bg-rose-500",
		}, true
	case AccentBlue:
		return AccentStyle{
			Primary:  "bg-blue-600",
			Hover:    "hover:bg-blue-700",
			Text:     "text-blue-600",
			Light:    "bg-blue-50 dark:bg-blue-900/20",
			Gradient: "from-blue-600 to-cyan-600",
			Shadow:   "shadow-blue-200 dark:shadow-blue-900/20",
			Swatch:   "bg-blue-500",
		}, true
	case AccentAmber:
		return AccentStyle{
			Primary:  "bg-amber-600",
			Hover:    "hover:bg-amber-700",
			Text:     "text-amber-600",
			Light:    "bg-amber-50 dark:bg-amber-900/20",
			Gradient: "from-amber-600 to-orange-600",
			Shadow:   "shadow-amber-200 dark:shadow-amber-900/20",
			Swatch:   "bg-amber-500",
		}, true
	}
	style, _ := AccentViolet.Style()
	return style, false
}
