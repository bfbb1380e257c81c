package service

import (
	"context"
	"errors"
	"testing"
)

type fakeSeeder struct {
	calls int
	err   error
}

func (f *fakeSeeder) Initialize(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestNewDemoScheduler_InvalidCron(t *testing.T) {
	if _, err := NewDemoScheduler(&fakeSeeder{}, "every tuesday"); err == nil {
		t.Error("NewDemoScheduler() accepted an invalid expression")
	}
}

func TestDemoScheduler_Disabled(t *testing.T) {
	s, err := NewDemoScheduler(&fakeSeeder{}, "")
	if err != nil {
		t.Fatalf("NewDemoScheduler() error = %v", err)
	}
	s.Start()
	defer s.Stop()

	status := s.Status()
	if status.Enabled || status.NextRun != nil || status.LastRun != nil {
		t.Errorf("Status() = %+v, want disabled", status)
	}
}

func TestDemoScheduler_StatusAfterRun(t *testing.T) {
	seeder := &fakeSeeder{err: errors.New("store down")}
	s, err := NewDemoScheduler(seeder, "0 3 * * *")
	if err != nil {
		t.Fatalf("NewDemoScheduler() error = %v", err)
	}
	s.Start()
	defer s.Stop()

	if next := s.Status().NextRun; next == nil {
		t.Error("NextRun = nil for a started schedule")
	}

	s.run()

	status := s.Status()
	if seeder.calls != 1 {
		t.Errorf("seeder called %d times, want 1", seeder.calls)
	}
	if !status.Enabled || status.CronExpr != "0 3 * * *" {
		t.Errorf("Status() = %+v", status)
	}
	if status.LastRun == nil || status.LastErr != "store down" {
		t.Errorf("LastRun = %v, LastErr = %q", status.LastRun, status.LastErr)
	}
}
