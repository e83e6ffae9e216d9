package controller

import (
	"context"
	"errors"
	"reflect"
	"scholar-ai-go/internal/model"
	"testing"
)

func samplePlan() *model.StudyPlan {
	return &model.StudyPlan{
		Subjects:   []string{"Mathematics"},
		ExamDates:  "June 10",
		DailyHours: 4,
		Schedule: []model.ScheduleItem{
			{Day: "Monday", Time: "09:00", Activity: "Study", Topic: "Limits"},
			{Day: "Monday", Time: "10:30", Activity: "Break", Topic: "Stretch"},
		},
	}
}

func TestPlannerDefaultsAndSubjects(t *testing.T) {
	p := NewPlanner(&fakeGeneration{}, newPrefs(), "v1")
	snap := p.Snapshot()
	if !reflect.DeepEqual(snap.Subjects, []string{"Mathematics", "Computer Science"}) || snap.DailyHours != 4 {
		t.Fatalf("defaults = %+v", snap)
	}

	p.AddSubject("   ")
	p.AddSubject("  Chemistry ")
	p.AddSubject("Chemistry")
	if got := p.Snapshot().Subjects; !reflect.DeepEqual(got, []string{"Mathematics", "Computer Science", "Chemistry", "Chemistry"}) {
		t.Fatalf("subjects = %v", got)
	}

	if err := p.RemoveSubject(1); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveSubject(9); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if got := p.Snapshot().Subjects; !reflect.DeepEqual(got, []string{"Mathematics", "Chemistry", "Chemistry"}) {
		t.Fatalf("subjects after remove = %v", got)
	}

	p.SetDailyHours(30)
	if p.Snapshot().DailyHours != 30 {
		t.Fatal("daily hours must be accepted as entered")
	}
}

func TestPlannerGenerateRequiresInput(t *testing.T) {
	gen := &fakeGeneration{plan: samplePlan()}
	p := NewPlanner(gen, newPrefs(), "v1")

	if err := p.Generate(context.Background()); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("missing deadline: err = %v", err)
	}
	p.SetDeadline("June")
	_ = p.RemoveSubject(0)
	_ = p.RemoveSubject(0)
	if err := p.Generate(context.Background()); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("no subjects: err = %v", err)
	}
	if gen.callCount() != 0 {
		t.Fatal("service must not be called without input")
	}
}

func TestPlannerGeneratePersistsAndRestores(t *testing.T) {
	prefs := newPrefs()
	gen := &fakeGeneration{plan: samplePlan()}
	p := NewPlanner(gen, prefs, "v1")
	p.SetDeadline("June 10")

	if err := p.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p.Snapshot().Plan, samplePlan()) {
		t.Fatalf("plan = %+v", p.Snapshot().Plan)
	}

	remounted := NewPlanner(gen, prefs, "v1")
	if err := remounted.Mount(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(remounted.Snapshot().Plan, samplePlan()) {
		t.Fatal("plan must be restored on mount")
	}
}

func TestPlannerFailureKeepsPriorPlan(t *testing.T) {
	prefs := newPrefs()
	_ = prefs.SavePlan(context.Background(), "v1", samplePlan())

	p := NewPlanner(&fakeGeneration{err: errUnavailable}, prefs, "v1")
	if err := p.Mount(context.Background()); err != nil {
		t.Fatal(err)
	}
	p.SetDeadline("June")
	if err := p.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	snap := p.Snapshot()
	if snap.Loading || !reflect.DeepEqual(snap.Plan, samplePlan()) {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestPlannerPersistsAfterUnmount(t *testing.T) {
	prefs := newPrefs()
	gen := &fakeGeneration{plan: samplePlan(), started: make(chan string, 1), gate: make(chan struct{})}
	p := NewPlanner(gen, prefs, "v1")
	p.SetDeadline("June")

	done := make(chan error, 1)
	go func() { done <- p.Generate(context.Background()) }()
	<-gen.started
	if !p.Snapshot().Loading {
		t.Fatal("planner should be loading mid-call")
	}
	if err := p.Generate(context.Background()); !errors.Is(err, ErrBusy) {
		t.Fatalf("err = %v, want ErrBusy", err)
	}
	p.unmount()
	gen.gate <- struct{}{}
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	saved, err := prefs.LoadPlan(context.Background(), "v1")
	if err != nil || !reflect.DeepEqual(saved, samplePlan()) {
		t.Fatalf("saved plan = %+v, %v", saved, err)
	}
}
