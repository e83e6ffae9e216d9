package controller

import (
	"context"
	"scholar-ai-go/internal/model"
	"testing"
	"time"
)

func TestDashboardSummary(t *testing.T) {
	prefs := newPrefs()
	ctx := context.Background()
	_ = prefs.SaveTasks(ctx, "v1", []model.Task{
		{ID: "1", Title: "Old", Deadline: "2026-01-01", Priority: model.PriorityHigh},
		{ID: "2", Title: "Later", Deadline: "2026-12-01", Priority: model.PriorityLow},
		{ID: "3", Title: "Soon", Deadline: "2026-10-20", Priority: model.PriorityHigh},
		{ID: "4", Title: "Done", Deadline: "2026-10-15", Priority: model.PriorityMedium, Completed: true},
		{ID: "5", Title: "Someday", Priority: model.PriorityMedium},
	})
	_ = prefs.SavePlan(ctx, "v1", samplePlan())

	d := NewDashboard(prefs, "v1")
	d.now = func() time.Time { return time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC) }
	if err := d.Mount(ctx); err != nil {
		t.Fatal(err)
	}
	snap := d.Snapshot()
	if snap.PendingTasks != 4 || snap.CompletedTasks != 1 || snap.HighPriorityPending != 2 {
		t.Fatalf("counts = %+v", snap)
	}
	if snap.NextDeadline == nil || snap.NextDeadline.ID != "3" {
		t.Fatalf("next deadline = %+v", snap.NextDeadline)
	}
	if !snap.HasPlan || snap.PlanSessions != 2 || snap.DailyHours != 4 {
		t.Fatalf("plan summary = %+v", snap)
	}
	if len(snap.Shortcuts) != 3 || snap.Shortcuts[0] != model.ViewChat {
		t.Fatalf("shortcuts = %v", snap.Shortcuts)
	}
}

func TestDashboardEmptyStore(t *testing.T) {
	d := NewDashboard(newPrefs(), "v1")
	if err := d.Mount(context.Background()); err != nil {
		t.Fatal(err)
	}
	snap := d.Snapshot()
	if snap.PendingTasks != 0 || snap.NextDeadline != nil || snap.HasPlan {
		t.Fatalf("snapshot = %+v", snap)
	}
}
