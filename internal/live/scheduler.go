package live

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the periodic re-solve of live sessions.
type Scheduler struct {
	manager *Manager
	cron    *cron.Cron
}

// NewScheduler creates a Scheduler around a session manager.
func NewScheduler(manager *Manager) *Scheduler {
	return &Scheduler{
		manager: manager,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start begins re-solving all live sessions every 5 seconds.
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("*/5 * * * * *", func() {
		s.manager.SolveAll(context.Background())
	})
	if err != nil {
		log.Printf("Failed to create live re-solve job: %v", err)
		return
	}
	log.Println("Live re-solve scheduler started (every 5s)")
	s.cron.Start()
}

// Stop halts the scheduler; running ticks finish first.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
