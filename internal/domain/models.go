package domain

import (
	"time"
)

// User represents a telegram user in the system
type User struct {
	ID         uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

// UserLimit tracks the plan-generation quota of one user.
// Absence of a record means the user never generated a plan.
type UserLimit struct {
	ID         uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
	UserID     int64
	LastPlanAt time.Time
	PlanCount  int
}

// PlanAttributes holds the questionnaire answers a plan is built from.
type PlanAttributes struct {
	Gender   string  `json:"gender"`
	Goal     string  `json:"goal"`
	Activity string  `json:"activity"`
	Age      int     `json:"age"`
	Height   int     `json:"height"`
	Weight   float64 `json:"weight"`
}

// Meal is a single slot in a day plan.
type Meal struct {
	Type     string `json:"type"`
	Time     string `json:"time"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// DayPlan holds the meal slots of one weekday.
type DayPlan struct {
	Day      string `json:"day"`
	Meals    []Meal `json:"meals"`
	Calories int    `json:"calories"`
}

// PlanArtifact is an immutable generated weekly plan.
type PlanArtifact struct {
	ID           string         `json:"id"`
	Attributes   PlanAttributes `json:"attributes"`
	Days         []DayPlan      `json:"days"`
	ShoppingList string         `json:"shopping_list"`
	WaterAdvice  string         `json:"water_advice"`
	CreatedAt    time.Time      `json:"created_at"`
}

// CheckIn is a body-metrics snapshot submitted by a user.
type CheckIn struct {
	ID        uint
	UserID    int64
	Weight    float64
	Waist     int
	Wellbeing int
	Sleep     int
	Timestamp time.Time
}
