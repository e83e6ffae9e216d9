// Package render 把工作区状态转换为前端直接渲染的页面模型，不产生任何副作用。
package render

import (
	"scholar-ai-go/internal/controller"
	"scholar-ai-go/internal/model"
)

const headerLabel = "Current Space"

// PageInput 是渲染一页所需的全部状态。
type PageInput struct {
	View  model.ViewType
	Theme model.ThemeSettings
	// Body 是当前挂载页面的快照，类型与 View 对应。
	Body interface{}
}

// Page 是返回给前端的完整页面模型。
type Page struct {
	Header      Header            `json:"header"`
	Navigation  []NavItem         `json:"navigation"`
	Palette     []Swatch          `json:"palette"`
	DisplayMode string            `json:"displayMode"`
	Accent      model.Accent      `json:"accent"`
	Style       model.AccentStyle `json:"style"`
	View        model.ViewType    `json:"view"`
	Body        interface{}       `json:"body"`
}

type Header struct {
	Label string `json:"label"`
	Title string `json:"title"`
}

type NavItem struct {
	ID     model.ViewType `json:"id"`
	Label  string         `json:"label"`
	Active bool           `json:"active"`
}

type Swatch struct {
	Accent   model.Accent `json:"accent"`
	Class    string       `json:"class"`
	Selected bool         `json:"selected"`
}

// PlanState 取值
const (
	PlanStateEmpty = "empty"
	PlanStateReady = "ready"
)

// PlannerBody 在计划快照上附加渲染状态，空排期按“没有计划”渲染。
type PlannerBody struct {
	controller.PlannerSnapshot
	PlanState string `json:"planState"`
}

// WellnessBody 在心情快照上附加是否展示建议面板。
type WellnessBody struct {
	controller.WellnessSnapshot
	ShowAdvice bool `json:"showAdvice"`
}

// AssistantBody 在助手快照上附加是否展示测验。
type AssistantBody struct {
	controller.AssistantSnapshot
	ShowSummary bool `json:"showSummary"`
	ShowQuiz    bool `json:"showQuiz"`
}

// Render 根据输入构造页面模型。
func Render(in PageInput) Page {
	style, _ := in.Theme.Accent.Style()

	nav := make([]NavItem, 0, len(model.Views))
	for _, v := range model.Views {
		nav = append(nav, NavItem{ID: v, Label: v.Label(), Active: v == in.View})
	}
	palette := make([]Swatch, 0, len(model.Accents))
	for _, a := range model.Accents {
		s, _ := a.Style()
		palette = append(palette, Swatch{Accent: a, Class: s.Swatch, Selected: a == in.Theme.Accent})
	}

	return Page{
		Header:      Header{Label: headerLabel, Title: in.View.Label()},
		Navigation:  nav,
		Palette:     palette,
		DisplayMode: in.Theme.DisplayMode(),
		Accent:      in.Theme.Accent,
		Style:       style,
		View:        in.View,
		Body:        Body(in.Body),
	}
}

// Body 为需要额外渲染状态的快照补充字段，其余快照原样返回。
func Body(snapshot interface{}) interface{} {
	switch s := snapshot.(type) {
	case controller.PlannerSnapshot:
		state := PlanStateEmpty
		if s.Plan.HasSchedule() {
			state = PlanStateReady
		}
		return PlannerBody{PlannerSnapshot: s, PlanState: state}
	case controller.WellnessSnapshot:
		return WellnessBody{WellnessSnapshot: s, ShowAdvice: s.Mood != "" && (s.Loading || s.Advice != "")}
	case controller.AssistantSnapshot:
		return AssistantBody{
			AssistantSnapshot: s,
			ShowSummary:       s.Resources != nil && s.Resources.Summary != "",
			ShowQuiz:          s.Resources != nil && len(s.Resources.Quiz) > 0,
		}
	}
	return snapshot
}
