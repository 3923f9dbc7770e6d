package database

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/config"
	"github.com/vmaleev/nutriplan-bot/internal/database/migrations"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex"`
	Username   string
	FirstName  string
	LastName   string
}

type UserLimit struct {
	gorm.Model
	UserID     int64 `gorm:"uniqueIndex"`
	LastPlanAt time.Time
	PlanCount  int `gorm:"default:0"`
}

type Plan struct {
	gorm.Model
	UserID     int64  `gorm:"index"`
	ArtifactID string `gorm:"uniqueIndex"`
	Payload    datatypes.JSON
}

type CheckIn struct {
	gorm.Model
	UserID    int64 `gorm:"index"`
	Weight    float64
	Waist     int
	Wellbeing int
	Sleep     int
	Timestamp time.Time `gorm:"index"`
}

func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get the directory of the current file
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("failed to get current file path")
	}
	migrationsDir := filepath.Join(filepath.Dir(filename), "migrations")

	// Load and run migrations
	if err := migrations.LoadSQLMigrations(db, migrationsDir); err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Auto-migrate the schema for models that don't have explicit migrations
	if err := db.AutoMigrate(&User{}, &UserLimit{}, &Plan{}, &CheckIn{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	log.Println("Database connection established and migrations completed")
	return db, nil
}
