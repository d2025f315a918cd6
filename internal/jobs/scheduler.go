// Package jobs runs the background maintenance schedule.
package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sageplan/sage-backend/internal/repository"
)

// Scheduler owns the cron instance and the share-pruning job. Rejected
// consent records carry no advisor value and are removed after a retention
// window.
type Scheduler struct {
	cron           *cron.Cron
	shareRepo      *repository.ShareRepository
	pruneAfterDays int
}

// NewScheduler creates a scheduler with the share-pruning job registered on
// the given cron expression.
func NewScheduler(shareRepo *repository.ShareRepository, schedule string, pruneAfterDays int) (*Scheduler, error) {
	s := &Scheduler{
		cron:           cron.New(),
		shareRepo:      shareRepo,
		pruneAfterDays: pruneAfterDays,
	}

	if _, err := s.cron.AddFunc(schedule, s.pruneShares); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) pruneShares() {
	cutoff := time.Now().AddDate(0, 0, -s.pruneAfterDays)

	pruned, err := s.shareRepo.PruneRejectedBefore(cutoff)
	if err != nil {
		log.Printf("Share pruning failed: %v", err)
		return
	}
	if pruned > 0 {
		log.Printf("Pruned %d rejected scenario shares older than %d days", pruned, s.pruneAfterDays)
	}
}
