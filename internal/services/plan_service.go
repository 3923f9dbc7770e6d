package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
	"github.com/vmaleev/nutriplan-bot/internal/plan"
)

// PlanService synthesizes and persists weekly plans.
type PlanService struct {
	plans domain.PlanRepository
	now   func() time.Time
}

func NewPlanService(plans domain.PlanRepository) *PlanService {
	return &PlanService{plans: plans, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *PlanService) WithClock(now func() time.Time) *PlanService {
	s.now = now
	return s
}

// Generate builds a plan from complete attributes and stores it. The
// persisted artifact is returned so the caller can render it immediately.
func (s *PlanService) Generate(ctx context.Context, userID int64, attrs domain.PlanAttributes) (*domain.PlanArtifact, error) {
	artifact := plan.Synthesize(attrs, s.now())
	if err := s.plans.InsertPlan(ctx, userID, artifact); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	return artifact, nil
}

// Latest returns the most recent plan of a user, or nil if none exists.
// Read failures fail open to "no plan", logged.
func (s *PlanService) Latest(ctx context.Context, userID int64) *domain.PlanArtifact {
	artifact, err := s.plans.GetLatestPlan(ctx, userID)
	if err != nil {
		logger.Error("Failed to read latest plan", "user_id", userID, "error", err)
		return nil
	}
	return artifact
}
