package services

import (
	"context"
	"log"

	"paasta-portal/internal/adapters/persistence/repositories"
	"paasta-portal/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs
type CronService struct {
	appRepo repositories.ApplicationRepository
	cron    *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(appRepo repositories.ApplicationRepository) *CronService {
	return &CronService{
		appRepo: appRepo,
		cron:    cron.New(),
	}
}

// Start registers the scheduled jobs and starts the scheduler
func (s *CronService) Start() error {
	// Daily reminder of requests still waiting for an approval decision.
	if _, err := s.cron.AddFunc("30 8 * * *", s.remindPendingApprovals); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron scheduler stopped")
}

func (s *CronService) remindPendingApprovals() {
	count, err := s.appRepo.CountByStatus(context.Background(), domain.StatusApprovalPending)
	if err != nil {
		log.Printf("❌ Pending approval reminder failed: %v", err)
		return
	}

	if count > 0 {
		log.Printf("⏰ Approval reminder: %d application(s) awaiting decision", count)
	}
}
