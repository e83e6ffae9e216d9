package tasks

import "testing"

func TestRegister(t *testing.T) {
	s := NewScheduler()
	if err := s.Register("sweep", "@every 10m", func() {}); err != nil {
		t.Fatal(err)
	}
	if err := s.Register("sweep", "@every 1m", func() {}); err == nil {
		t.Fatal("duplicate job names must be rejected")
	}
	if len(s.cron.Entries()) != 1 {
		t.Fatalf("entries = %d, want 1", len(s.cron.Entries()))
	}
}

func TestRegisteredJobRuns(t *testing.T) {
	s := NewScheduler()
	runs := 0
	if err := s.Register("sweep", "@every 10m", func() { runs++ }); err != nil {
		t.Fatal(err)
	}
	s.cron.Entry(s.jobs["sweep"]).Job.Run()
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
}

func TestRegisterRejectsBadSpec(t *testing.T) {
	if err := NewScheduler().Register("bad", "every so often", func() {}); err == nil {
		t.Fatal("expected invalid schedule error")
	}
}

func TestPanicIsRecovered(t *testing.T) {
	wrap("boom", func() { panic("boom") })()
}

func TestStartStop(t *testing.T) {
	s := NewScheduler()
	if err := s.Register("noop", "@hourly", func() {}); err != nil {
		t.Fatal(err)
	}
	s.Start()
	s.Stop()
}
