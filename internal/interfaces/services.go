package interfaces

import (
	"context"

	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"github.com/vmaleev/nutriplan-bot/internal/services"
)

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// QuotaServiceInterface defines the contract for the plan-generation quota
type QuotaServiceInterface interface {
	IsAdmin(userID int64) bool
	IsEligible(ctx context.Context, userID int64) bool
	RemainingCooldownDays(ctx context.Context, userID int64) int
	RecordSuccessfulPlan(ctx context.Context, userID int64)
	ResetLimit(ctx context.Context, userID int64) error
	ResetAllLimits(ctx context.Context) error
}

// PlanServiceInterface defines the contract for plan generation and recall
type PlanServiceInterface interface {
	Generate(ctx context.Context, userID int64, attrs domain.PlanAttributes) (*domain.PlanArtifact, error)
	Latest(ctx context.Context, userID int64) *domain.PlanArtifact
}

// CheckInServiceInterface defines the contract for check-in operations
type CheckInServiceInterface interface {
	Record(ctx context.Context, userID int64, weight float64, waist, wellbeing, sleep int) error
	History(ctx context.Context, userID int64, limit int) []domain.CheckIn
}

// StatsServiceInterface defines the contract for aggregate counters
type StatsServiceInterface interface {
	Stats(ctx context.Context) (*services.Stats, error)
}
