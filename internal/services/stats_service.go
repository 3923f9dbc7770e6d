package services

import (
	"context"
	"fmt"

	"github.com/vmaleev/nutriplan-bot/internal/domain"
)

// Stats is an aggregate snapshot over all stored entities.
type Stats struct {
	Users    int64 `json:"users"`
	Plans    int64 `json:"plans"`
	CheckIns int64 `json:"check_ins"`
}

// StatsService aggregates counters for the admin panel and the /stats
// HTTP endpoint.
type StatsService struct {
	users    domain.UserRepository
	plans    domain.PlanRepository
	checkIns domain.CheckInRepository
}

func NewStatsService(users domain.UserRepository, plans domain.PlanRepository, checkIns domain.CheckInRepository) *StatsService {
	return &StatsService{users: users, plans: plans, checkIns: checkIns}
}

func (s *StatsService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	plans, err := s.plans.CountPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count plans: %w", err)
	}
	checkIns, err := s.checkIns.CountCheckIns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return &Stats{Users: users, Plans: plans, CheckIns: checkIns}, nil
}
