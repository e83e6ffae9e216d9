package controller

import (
	"context"
	"errors"
	"reflect"
	"scholar-ai-go/internal/model"
	"scholar-ai-go/internal/service"
	"testing"
	"time"
)

func TestTasksLifecycle(t *testing.T) {
	prefs := newPrefs()
	ctx := context.Background()
	tasks := NewTasksController(prefs, "v1")
	clock := time.UnixMilli(1_700_000_000_000)
	tasks.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}

	if _, err := tasks.Add(ctx, "   ", "", ""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	essay, err := tasks.Add(ctx, "Essay draft", "2026-11-01", "")
	if err != nil {
		t.Fatal(err)
	}
	if essay.ID != "1700000000001" || essay.Priority != model.PriorityMedium || essay.Completed {
		t.Fatalf("essay = %+v", essay)
	}
	lab, err := tasks.Add(ctx, "Lab report", "", model.PriorityHigh)
	if err != nil {
		t.Fatal(err)
	}

	toggled, err := tasks.Toggle(ctx, essay.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("Toggle = %+v, %v", toggled, err)
	}
	if snap := tasks.Snapshot(); snap.PendingCount != 1 {
		t.Fatalf("PendingCount = %d, want 1", snap.PendingCount)
	}
	if err := tasks.Delete(ctx, lab.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.Toggle(ctx, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
	if err := tasks.Delete(ctx, lab.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("second delete err = %v", err)
	}

	saved, err := prefs.LoadTasks(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(saved, tasks.Snapshot().Tasks) {
		t.Fatalf("persisted %+v, in memory %+v", saved, tasks.Snapshot().Tasks)
	}

	remounted := NewTasksController(prefs, "v1")
	if err := remounted.Mount(ctx); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(remounted.Snapshot().Tasks, saved) {
		t.Fatal("tasks must survive a remount")
	}
}

func newClockedTasks(prefs service.PreferenceService) *Tasks {
	tasks := NewTasksController(prefs, "v1")
	clock := time.UnixMilli(1_700_000_000_000)
	tasks.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	return tasks
}

func TestToggleTwiceRestoresTask(t *testing.T) {
	ctx := context.Background()
	tasks := newClockedTasks(newPrefs())
	original, err := tasks.Add(ctx, "Essay draft", "2026-11-01", model.PriorityHigh)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.Toggle(ctx, original.ID); err != nil {
		t.Fatal(err)
	}
	back, err := tasks.Toggle(ctx, original.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, original) {
		t.Fatalf("after two toggles %+v, want %+v", back, original)
	}
	if got := tasks.Snapshot().Tasks; !reflect.DeepEqual(got, []model.Task{original}) {
		t.Fatalf("list = %+v", got)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	prefs := newPrefs()
	ctx := context.Background()
	tasks := newClockedTasks(prefs)
	for _, title := range []string{"Essay", "Lab report", "Reading"} {
		if _, err := tasks.Add(ctx, title, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := tasks.Toggle(ctx, tasks.Snapshot().Tasks[2].ID); err != nil {
		t.Fatal(err)
	}
	before := tasks.Snapshot().Tasks

	if err := tasks.Delete(ctx, before[1].ID); err != nil {
		t.Fatal(err)
	}
	want := []model.Task{before[0], before[2]}
	if got := tasks.Snapshot().Tasks; !reflect.DeepEqual(got, want) {
		t.Fatalf("after delete %+v, want %+v", got, want)
	}
	saved, err := prefs.LoadTasks(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(saved, want) {
		t.Fatalf("persisted %+v, want %+v", saved, want)
	}
}

func TestSnapshotListsPriorities(t *testing.T) {
	want := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
	if got := NewTasksController(newPrefs(), "v1").Snapshot().Priorities; !reflect.DeepEqual(got, want) {
		t.Fatalf("priorities = %v, want %v", got, want)
	}
}

func TestTasksValidation(t *testing.T) {
	tasks := NewTasksController(newPrefs(), "v1")
	ctx := context.Background()
	if _, err := tasks.Add(ctx, "Essay", "", "Urgent"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("priority err = %v", err)
	}
	if _, err := tasks.Add(ctx, "Essay", "next friday", model.PriorityLow); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("deadline err = %v", err)
	}
	if n := len(tasks.Snapshot().Tasks); n != 0 {
		t.Fatalf("invalid tasks must not be added, have %d", n)
	}
}
