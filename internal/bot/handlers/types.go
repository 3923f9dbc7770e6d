package handlers

import (
	"github.com/vmaleev/nutriplan-bot/internal/interfaces"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	UserSvc    interfaces.UserServiceInterface
	QuotaSvc   interfaces.QuotaServiceInterface
	PlanSvc    interfaces.PlanServiceInterface
	CheckInSvc interfaces.CheckInServiceInterface
	StatsSvc   interfaces.StatsServiceInterface
}
