package domain

import (
	"context"
	"time"
)

// UserRepository handles user identity records.
type UserRepository interface {
	UpsertUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// LimitRepository handles plan-quota records.
// GetLimit returns (nil, nil) when no record exists for the user.
type LimitRepository interface {
	GetLimit(ctx context.Context, userID int64) (*UserLimit, error)
	UpsertLimit(ctx context.Context, userID int64, lastPlanAt time.Time) error
	DeleteLimit(ctx context.Context, userID int64) error
	DeleteAllLimits(ctx context.Context) error
}

// PlanRepository handles generated plan artifacts, append-only.
type PlanRepository interface {
	InsertPlan(ctx context.Context, userID int64, artifact *PlanArtifact) error
	GetLatestPlan(ctx context.Context, userID int64) (*PlanArtifact, error)
	CountPlans(ctx context.Context) (int64, error)
}

// CheckInRepository handles body-metric snapshots, append-only.
type CheckInRepository interface {
	InsertCheckIn(ctx context.Context, checkIn *CheckIn) error
	GetRecentCheckIns(ctx context.Context, userID int64, limit int) ([]CheckIn, error)
	CountCheckIns(ctx context.Context) (int64, error)
}
