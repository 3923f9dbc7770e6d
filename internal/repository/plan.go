package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vmaleev/nutriplan-bot/internal/database"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanRepository handles generated plan artifacts
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// InsertPlan appends a plan artifact for a user. Artifacts are never
// updated or deleted.
func (r *PlanRepository) InsertPlan(ctx context.Context, userID int64, artifact *domain.PlanArtifact) error {
	payload, err := json.Marshal(artifact)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&database.Plan{
		UserID:     userID,
		ArtifactID: artifact.ID,
		Payload:    datatypes.JSON(payload),
	}).Error
}

// GetLatestPlan returns the most recent artifact for a user, or (nil, nil)
// if none exists.
func (r *PlanRepository) GetLatestPlan(ctx context.Context, userID int64) (*domain.PlanArtifact, error) {
	var row database.Plan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var artifact domain.PlanArtifact
	if err := json.Unmarshal(row.Payload, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}

// CountPlans returns the total number of generated plans.
func (r *PlanRepository) CountPlans(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&database.Plan{}).Count(&count).Error
	return count, err
}
