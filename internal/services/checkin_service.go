package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
)

// HistoryLimit is how many recent check-ins the history view shows.
const HistoryLimit = 7

// CheckInService records body-metric snapshots. The dialogue layer already
// validated the values; bounds are not re-checked here.
type CheckInService struct {
	checkIns domain.CheckInRepository
	now      func() time.Time
}

func NewCheckInService(checkIns domain.CheckInRepository) *CheckInService {
	return &CheckInService{checkIns: checkIns, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *CheckInService) WithClock(now func() time.Time) *CheckInService {
	s.now = now
	return s
}

// Record persists one check-in. Unlike reads, a write failure here is
// surfaced: the user is waiting to know whether the data was saved.
func (s *CheckInService) Record(ctx context.Context, userID int64, weight float64, waist, wellbeing, sleep int) error {
	checkIn := &domain.CheckIn{
		UserID:    userID,
		Weight:    weight,
		Waist:     waist,
		Wellbeing: wellbeing,
		Sleep:     sleep,
		Timestamp: s.now(),
	}
	if err := s.checkIns.InsertCheckIn(ctx, checkIn); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

// History returns the last check-ins of a user, newest first. Read
// failures fail open to an empty history, logged.
func (s *CheckInService) History(ctx context.Context, userID int64, limit int) []domain.CheckIn {
	if limit <= 0 {
		limit = HistoryLimit
	}
	checkIns, err := s.checkIns.GetRecentCheckIns(ctx, userID, limit)
	if err != nil {
		logger.Error("Failed to read check-in history", "user_id", userID, "error", err)
		return nil
	}
	return checkIns
}
