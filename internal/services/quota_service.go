package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
)

// CooldownDays is the rolling window between two plan generations.
const CooldownDays = 7

// QuotaService gates plan generation behind the per-user cooldown.
// The admin is exempt from the quota entirely.
//
// Storage failures on this path fail open: a user is never blocked by a
// database hiccup, the error is only logged.
type QuotaService struct {
	limits  domain.LimitRepository
	adminID int64
	now     func() time.Time
}

func NewQuotaService(limits domain.LimitRepository, adminID int64) *QuotaService {
	return &QuotaService{limits: limits, adminID: adminID, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *QuotaService) WithClock(now func() time.Time) *QuotaService {
	s.now = now
	return s
}

// IsAdmin reports whether the user is the configured privileged user.
func (s *QuotaService) IsAdmin(userID int64) bool {
	return s.adminID != 0 && userID == s.adminID
}

// IsEligible reports whether the user may generate a new plan.
func (s *QuotaService) IsEligible(ctx context.Context, userID int64) bool {
	if s.IsAdmin(userID) {
		return true
	}

	limit, err := s.limits.GetLimit(ctx, userID)
	if err != nil {
		logger.Error("Failed to read user limit, allowing plan generation", "user_id", userID, "error", err)
		return true
	}
	if limit == nil {
		return true
	}
	return s.elapsedDays(limit.LastPlanAt) >= CooldownDays
}

// RemainingCooldownDays returns how many whole days are left before the
// user may generate again. Zero means eligible.
func (s *QuotaService) RemainingCooldownDays(ctx context.Context, userID int64) int {
	if s.IsAdmin(userID) {
		return 0
	}

	limit, err := s.limits.GetLimit(ctx, userID)
	if err != nil {
		logger.Error("Failed to read user limit, reporting no cooldown", "user_id", userID, "error", err)
		return 0
	}
	if limit == nil {
		return 0
	}

	remaining := CooldownDays - s.elapsedDays(limit.LastPlanAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordSuccessfulPlan stamps the quota record after a generation. A no-op
// for the admin. Write failures are logged, not raised: the plan itself is
// already persisted and the user should not see an error here.
func (s *QuotaService) RecordSuccessfulPlan(ctx context.Context, userID int64) {
	if s.IsAdmin(userID) {
		return
	}
	if err := s.limits.UpsertLimit(ctx, userID, s.now()); err != nil {
		logger.Error("Failed to record plan generation", "user_id", userID, "error", err)
	}
}

// ResetLimit clears the quota record of one user.
func (s *QuotaService) ResetLimit(ctx context.Context, userID int64) error {
	if err := s.limits.DeleteLimit(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset limit for user %d: %w", userID, err)
	}
	return nil
}

// ResetAllLimits clears every quota record.
func (s *QuotaService) ResetAllLimits(ctx context.Context) error {
	if err := s.limits.DeleteAllLimits(ctx); err != nil {
		return fmt.Errorf("failed to reset all limits: %w", err)
	}
	return nil
}

// elapsedDays floors the elapsed duration to whole 24-hour periods. This
// is a duration floor, not a calendar-date difference: 6 days 23 hours
// counts as 6.
func (s *QuotaService) elapsedDays(since time.Time) int {
	return int(s.now().Sub(since).Hours() / 24)
}
