package menus

import (
	"fmt"
	"strings"

	"github.com/vmaleev/nutriplan-bot/internal/domain"
)

var genderLabels = map[string]string{
	"male":   "мужской",
	"female": "женский",
}

var goalLabels = map[string]string{
	"loss":     "похудение",
	"maintain": "поддержание веса",
	"mass":     "набор массы",
}

var activityLabels = map[string]string{
	"low":    "низкая",
	"medium": "средняя",
	"high":   "высокая",
}

func label(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// FormatPlan renders a plan artifact as a single message.
func FormatPlan(artifact *domain.PlanArtifact) string {
	var b strings.Builder

	a := artifact.Attributes
	b.WriteString("🥗 Ваш план питания на неделю\n\n")
	fmt.Fprintf(&b, "Пол: %s\nВозраст: %d\nРост: %d см\nВес: %.1f кг\nЦель: %s\nАктивность: %s\n",
		label(genderLabels, a.Gender), a.Age, a.Height, a.Weight,
		label(goalLabels, a.Goal), label(activityLabels, a.Activity))

	for _, day := range artifact.Days {
		fmt.Fprintf(&b, "\n📅 %s (~%d ккал)\n", day.Day, day.Calories)
		for _, meal := range day.Meals {
			fmt.Fprintf(&b, "  %s %s — %s (%d ккал)\n", meal.Time, meal.Type, meal.Name, meal.Calories)
		}
	}

	fmt.Fprintf(&b, "\n🛒 Список покупок: %s\n", artifact.ShoppingList)
	fmt.Fprintf(&b, "\n💧 %s\n", artifact.WaterAdvice)
	fmt.Fprintf(&b, "\nСоздан: %s", artifact.CreatedAt.Format("02.01.2006"))

	return b.String()
}

// FormatHistory renders recent check-ins, newest first.
func FormatHistory(checkIns []domain.CheckIn) string {
	if len(checkIns) == 0 {
		return "Записей пока нет. Сделайте первый чек-ин через меню."
	}

	var b strings.Builder
	b.WriteString("📈 Последние чек-ины:\n\n")
	for _, c := range checkIns {
		fmt.Fprintf(&b, "%s — вес %.1f кг, талия %d см, самочувствие %d/5, сон %d/5\n",
			c.Timestamp.Format("02.01.2006"), c.Weight, c.Waist, c.Wellbeing, c.Sleep)
	}
	return b.String()
}
