package repository

import (
	"context"

	"github.com/vmaleev/nutriplan-bot/internal/database"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
	"gorm.io/gorm"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertUser creates the user on first contact and refreshes display
// fields on every subsequent one.
func (r *UserRepository) UpsertUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*domain.User, error) {
	var user database.User
	err := r.db.WithContext(ctx).
		Where(database.User{TelegramID: telegramID}).
		Assign(database.User{Username: username, FirstName: firstName, LastName: lastName}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return toDomainUser(&user), nil
}

// ListUsers returns all users, newest first.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []database.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *toDomainUser(&users[i]))
	}
	return out, nil
}

// CountUsers returns the total number of registered users.
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&database.User{}).Count(&count).Error
	return count, err
}

func toDomainUser(u *database.User) *domain.User {
	return &domain.User{
		ID:         u.ID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		TelegramID: u.TelegramID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
	}
}
