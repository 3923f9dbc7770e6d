package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/database"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LimitRepository handles plan-quota records
type LimitRepository struct {
	db *gorm.DB
}

// NewLimitRepository creates a new limit repository
func NewLimitRepository(db *gorm.DB) *LimitRepository {
	return &LimitRepository{db: db}
}

// GetLimit returns the quota record for a user, or (nil, nil) if the user
// never generated a plan.
func (r *LimitRepository) GetLimit(ctx context.Context, userID int64) (*domain.UserLimit, error) {
	var limit database.UserLimit
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&limit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.UserLimit{
		ID:         limit.ID,
		CreatedAt:  limit.CreatedAt,
		UpdatedAt:  limit.UpdatedAt,
		UserID:     limit.UserID,
		LastPlanAt: limit.LastPlanAt,
		PlanCount:  limit.PlanCount,
	}, nil
}

// UpsertLimit replaces the last-plan timestamp and increments the plan
// counter in one atomic statement, so concurrent requests from the same
// user cannot lose updates.
func (r *LimitRepository) UpsertLimit(ctx context.Context, userID int64, lastPlanAt time.Time) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_plan_at": lastPlanAt,
			"plan_count":   gorm.Expr("user_limits.plan_count + 1"),
			"updated_at":   lastPlanAt,
		}),
	}).Create(&database.UserLimit{
		UserID:     userID,
		LastPlanAt: lastPlanAt,
		PlanCount:  1,
	}).Error
}

// DeleteLimit removes the quota record for one user.
func (r *LimitRepository) DeleteLimit(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("user_id = ?", userID).Delete(&database.UserLimit{}).Error
}

// DeleteAllLimits removes every quota record.
func (r *LimitRepository) DeleteAllLimits(ctx context.Context) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("1 = 1").Delete(&database.UserLimit{}).Error
}
