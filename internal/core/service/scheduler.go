package service

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// seedTimeout bounds one scheduled reset
const seedTimeout = 30 * time.Second

// DemoScheduler periodically resets the demo data set with cron
type DemoScheduler struct {
	seeder   port.DemoSeeder
	cron     *cron.Cron
	cronExpr string
	entryID  cron.EntryID

	mu      sync.RWMutex
	lastRun *time.Time
	lastErr error
}

// NewDemoScheduler validates cronExpr; an empty expression yields a disabled scheduler.
func NewDemoScheduler(seeder port.DemoSeeder, cronExpr string) (*DemoScheduler, error) {
	s := &DemoScheduler{
		seeder:   seeder,
		cron:     cron.New(),
		cronExpr: cronExpr,
	}
	if cronExpr == "" {
		return s, nil
	}

	entryID, err := s.cron.AddFunc(cronExpr, s.run)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression '%s': %v", cronExpr, err)
	}
	s.entryID = entryID
	return s, nil
}

func (s *DemoScheduler) Enabled() bool { return s.cronExpr != "" }

// Start runs the cron loop in the background
func (s *DemoScheduler) Start() {
	if !s.Enabled() {
		log.Println("[Scheduler] Demo reset disabled")
		return
	}
	s.cron.Start()
	log.Printf("[Scheduler] Demo reset scheduled with cron: %s", s.cronExpr)
}

// Stop waits for a running reset to finish
func (s *DemoScheduler) Stop() {
	if !s.Enabled() {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[Scheduler] Demo reset scheduler stopped")
}

func (s *DemoScheduler) run() {
	log.Println("[Scheduler] Resetting demo data")

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	err := s.seeder.Initialize(ctx)
	now := time.Now().UTC()

	s.mu.Lock()
	s.lastRun = &now
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		log.Printf("[Scheduler] Error resetting demo data: %v", err)
	}
}

// Status reports the schedule and the outcome of the last run
func (s *DemoScheduler) Status() domain.DemoSchedule {
	status := domain.DemoSchedule{Enabled: s.Enabled(), CronExpr: s.cronExpr}
	if s.Enabled() {
		if next := s.cron.Entry(s.entryID).Next; !next.IsZero() {
			status.NextRun = &next
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	status.LastRun = s.lastRun
	if s.lastErr != nil {
		status.LastErr = s.lastErr.Error()
	}
	return status
}
