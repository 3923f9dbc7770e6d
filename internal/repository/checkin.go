package repository

import (
	"context"

	"github.com/vmaleev/nutriplan-bot/internal/database"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"gorm.io/gorm"
)

// CheckInRepository handles body-metric snapshots
type CheckInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// InsertCheckIn appends one check-in row.
func (r *CheckInRepository) InsertCheckIn(ctx context.Context, checkIn *domain.CheckIn) error {
	return r.db.WithContext(ctx).Create(&database.CheckIn{
		UserID:    checkIn.UserID,
		Weight:    checkIn.Weight,
		Waist:     checkIn.Waist,
		Wellbeing: checkIn.Wellbeing,
		Sleep:     checkIn.Sleep,
		Timestamp: checkIn.Timestamp,
	}).Error
}

// GetRecentCheckIns returns up to limit check-ins for a user, newest first.
func (r *CheckInRepository) GetRecentCheckIns(ctx context.Context, userID int64, limit int) ([]domain.CheckIn, error) {
	var rows []database.CheckIn
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.CheckIn, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CheckIn{
			ID:        row.ID,
			UserID:    row.UserID,
			Weight:    row.Weight,
			Waist:     row.Waist,
			Wellbeing: row.Wellbeing,
			Sleep:     row.Sleep,
			Timestamp: row.Timestamp,
		})
	}
	return out, nil
}

// CountCheckIns returns the total number of check-ins.
func (r *CheckInRepository) CountCheckIns(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&database.CheckIn{}).Count(&count).Error
	return count, err
}
