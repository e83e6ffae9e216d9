package controller

import (
	"context"
	"errors"
	"scholar-ai-go/internal/model"
	"testing"
)

func TestAssistantExplain(t *testing.T) {
	gen := &fakeGeneration{explanation: "Entropy is like a messy room."}
	a := NewAssistant(gen)

	if err := a.Explain(context.Background(), " "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if err := a.Explain(context.Background(), "entropy"); err != nil {
		t.Fatal(err)
	}
	snap := a.Snapshot()
	if snap.Concept != "entropy" || snap.Explanation != gen.explanation || snap.Loading {
		t.Fatalf("snapshot = %+v", snap)
	}

	gen.err = errUnavailable
	if err := a.Explain(context.Background(), "enthalpy"); err != nil {
		t.Fatal(err)
	}
	snap = a.Snapshot()
	if snap.Concept != "entropy" || snap.Explanation != "Entropy is like a messy room." || snap.Loading {
		t.Fatalf("failure must keep prior explanation: %+v", snap)
	}
}

func TestAssistantResourcesReplacedTogether(t *testing.T) {
	gen := &fakeGeneration{resources: &model.StudyResources{
		Summary: "Cells divide.",
		Quiz:    []model.QuizQuestion{{Question: "What divides?", Options: []string{"Cells"}, Answer: "Cells"}},
	}}
	a := NewAssistant(gen)

	if err := a.Resources(context.Background(), "mitosis"); err != nil {
		t.Fatal(err)
	}
	if res := a.Snapshot().Resources; res == nil || res.Summary != "Cells divide." || len(res.Quiz) != 1 {
		t.Fatalf("resources = %+v", res)
	}

	gen.err = errUnavailable
	_ = a.Resources(context.Background(), "meiosis")
	if res := a.Snapshot().Resources; res.Summary != "Cells divide." || len(res.Quiz) != 1 {
		t.Fatalf("failure must keep prior resources: %+v", res)
	}
}

func TestAssistantSharedLoading(t *testing.T) {
	gen := &fakeGeneration{explanation: "x", started: make(chan string, 1), gate: make(chan struct{})}
	a := NewAssistant(gen)

	done := make(chan error, 1)
	go func() { done <- a.Explain(context.Background(), "recursion") }()
	<-gen.started

	if err := a.Resources(context.Background(), "notes"); !errors.Is(err, ErrBusy) {
		t.Fatalf("err = %v, want ErrBusy while explaining", err)
	}
	gen.gate <- struct{}{}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestAssistantTabs(t *testing.T) {
	a := NewAssistant(&fakeGeneration{})
	if a.Snapshot().Tab != TabExplain {
		t.Fatal("assistant starts on the Explain tab")
	}
	if err := a.SetTab(TabResources); err != nil || a.Snapshot().Tab != TabResources {
		t.Fatalf("SetTab: %v", err)
	}
	if err := a.SetTab("Flashcards"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
