package menus

import (
	"strings"
	"testing"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/domain"
)

func TestFormatPlan(t *testing.T) {
	artifact := &domain.PlanArtifact{
		ID: "plan-1",
		Attributes: domain.PlanAttributes{
			Gender: "male", Goal: "loss", Activity: "medium",
			Age: 30, Height: 180, Weight: 75.5,
		},
		Days: []domain.DayPlan{{
			Day: "Понедельник",
			Meals: []domain.Meal{
				{Type: "Завтрак", Time: "08:00", Name: "Овсяная каша с ягодами", Calories: 350},
			},
			Calories: 350,
		}},
		ShoppingList: "Овсянка, гречка",
		WaterAdvice:  "Пейте воду",
		CreatedAt:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	text := FormatPlan(artifact)

	for _, want := range []string{
		"Пол: мужской",
		"Возраст: 30",
		"Рост: 180 см",
		"Вес: 75.5 кг",
		"Цель: похудение",
		"Активность: средняя",
		"Понедельник (~350 ккал)",
		"08:00 Завтрак",
		"Овсяная каша с ягодами (350 ккал)",
		"Овсянка, гречка",
		"Пейте воду",
		"10.03.2025",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected plan text to contain %q", want)
		}
	}
}

func TestFormatPlanUnknownLabelFallsBack(t *testing.T) {
	artifact := &domain.PlanArtifact{
		Attributes: domain.PlanAttributes{
			Gender: "other", Goal: "loss", Activity: "medium",
			Age: 30, Height: 180, Weight: 75,
		},
	}

	if text := FormatPlan(artifact); !strings.Contains(text, "Пол: other") {
		t.Errorf("expected unknown attribute value to pass through, got %q", text)
	}
}

func TestFormatHistory(t *testing.T) {
	checkIns := []domain.CheckIn{
		{Weight: 75.5, Waist: 85, Wellbeing: 4, Sleep: 3, Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{Weight: 76.0, Waist: 86, Wellbeing: 3, Sleep: 4, Timestamp: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)},
	}

	text := FormatHistory(checkIns)

	if !strings.Contains(text, "10.03.2025") || !strings.Contains(text, "03.03.2025") {
		t.Errorf("expected both dates in history, got %q", text)
	}
	if !strings.Contains(text, "вес 75.5 кг") || !strings.Contains(text, "талия 85 см") {
		t.Errorf("expected metrics in history, got %q", text)
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	if text := FormatHistory(nil); !strings.Contains(text, "Записей пока нет") {
		t.Errorf("expected empty-history message, got %q", text)
	}
}
