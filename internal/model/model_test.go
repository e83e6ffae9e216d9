package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestThemeMerge(t *testing.T) {
	dark := true
	rose := AccentRose
	base := DefaultTheme()

	got := base.Merge(ThemePatch{DarkMode: &dark})
	if !got.DarkMode || got.Accent != AccentViolet {
		t.Fatalf("dark patch = %+v", got)
	}
	got = got.Merge(ThemePatch{Accent: &rose})
	if !got.DarkMode || got.Accent != AccentRose {
		t.Fatalf("accent patch = %+v", got)
	}
	if got.DisplayMode() != "dark" || base.DisplayMode() != "light" {
		t.Fatalf("display modes %s/%s", got.DisplayMode(), base.DisplayMode())
	}
}

func TestAccentStyleCoversPalette(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Accents {
		s, ok := a.Style()
		if !ok || s.Primary == "" || s.Swatch == "" {
			t.Fatalf("accent %s has no style", a)
		}
		if seen[s.Primary] {
			t.Fatalf("accent %s reuses %s", a, s.Primary)
		}
		seen[s.Primary] = true
	}

	s, ok := Accent("neon").Style()
	violet, _ := AccentViolet.Style()
	if ok || s != violet {
		t.Fatalf("unknown accent must fall back to violet, got %+v ok=%v", s, ok)
	}
	if err := (ThemeSettings{Accent: "neon"}).Validate(); err == nil {
		t.Fatalf("unknown accent must not validate")
	}
}

func TestParseViewAndMood(t *testing.T) {
	for _, v := range Views {
		if got, ok := ParseView(string(v)); !ok || got != v {
			t.Fatalf("ParseView(%s) = %s, %v", v, got, ok)
		}
		if v.Label() == "" {
			t.Fatalf("view %s has no label", v)
		}
	}
	if _, ok := ParseView("Settings"); ok {
		t.Fatalf("unknown view accepted")
	}
	if _, ok := ParseMood("Stressed"); !ok {
		t.Fatalf("Stressed rejected")
	}
	if _, ok := ParseMood("stressed"); ok {
		t.Fatalf("mood labels are case-sensitive")
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Fatalf("%s should be valid", p)
		}
	}
	if Priority("Urgent").Valid() {
		t.Fatalf("Urgent should be invalid")
	}
}

func TestHasSchedule(t *testing.T) {
	var nilPlan *StudyPlan
	if nilPlan.HasSchedule() {
		t.Fatalf("nil plan has no schedule")
	}
	if (&StudyPlan{}).HasSchedule() {
		t.Fatalf("empty plan has no schedule")
	}
	if !(&StudyPlan{Schedule: []ScheduleItem{{Day: "Monday"}}}).HasSchedule() {
		t.Fatalf("plan with a session has a schedule")
	}
}

func TestLocalTimeJSON(t *testing.T) {
	ts := LocalTime(time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-03-04 05:06:07"` {
		t.Fatalf("marshal = %s", b)
	}
	var back LocalTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !time.Time(back).Equal(time.Time(ts)) {
		t.Fatalf("round trip = %v", time.Time(back))
	}
}
