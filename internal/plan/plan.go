// Package plan builds weekly nutrition plans from questionnaire answers.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmaleev/nutriplan-bot/internal/domain"
)

// Weekdays are emitted in this fixed order regardless of the current date.
var Weekdays = []string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// Каждый день содержит пять приемов пищи в фиксированном порядке.
var mealSlots = []struct {
	Type string
	Time string
}{
	{"Завтрак", "08:00"},
	{"Перекус", "11:00"},
	{"Обед", "14:00"},
	{"Перекус", "17:00"},
	{"Ужин", "19:30"},
}

type mealTemplate struct {
	Name     string
	Calories int
}

// The day-template catalogue is intentionally small: days are filled by
// cycling through it with dayIndex % len(dayTemplates), so content repeats
// across the week.
var dayTemplates = [][]mealTemplate{
	{
		{"Овсяная каша с ягодами", 350},
		{"Яблоко и горсть орехов", 200},
		{"Куриная грудка с гречкой и овощами", 550},
		{"Творог с медом", 250},
		{"Запеченная рыба с салатом", 450},
	},
	{
		{"Омлет с овощами и цельнозерновой хлеб", 400},
		{"Натуральный йогурт с бананом", 220},
		{"Индейка с бурым рисом", 530},
		{"Кефир и хлебцы", 180},
		{"Тушеные овощи с фасолью", 420},
	},
	{
		{"Творожная запеканка", 380},
		{"Груша и миндаль", 210},
		{"Говядина с картофелем и салатом", 580},
		{"Протеиновый смузи", 230},
		{"Курица с тушеной капустой", 440},
	},
}

const shoppingList = "Овсянка, гречка, бурый рис, куриная грудка, индейка, " +
	"говядина, рыба, яйца, творог, кефир, йогурт, фасоль, " +
	"сезонные овощи, фрукты, орехи, цельнозерновой хлеб"

const waterAdvice = "Пейте 1.5-2 литра чистой воды в день, по стакану за 30 минут до каждого приема пищи"

// Synthesize builds a weekly plan from complete questionnaire attributes.
// It never fails: the attributes are collected step by step by the wizard,
// so an incomplete set here is a programming error and panics.
func Synthesize(attrs domain.PlanAttributes, now time.Time) *domain.PlanArtifact {
	mustBeComplete(attrs)

	days := make([]domain.DayPlan, 0, len(Weekdays))
	for i, day := range Weekdays {
		tpl := dayTemplates[i%len(dayTemplates)]
		meals := make([]domain.Meal, 0, len(mealSlots))
		total := 0
		for j, slot := range mealSlots {
			meals = append(meals, domain.Meal{
				Type:     slot.Type,
				Time:     slot.Time,
				Name:     tpl[j].Name,
				Calories: tpl[j].Calories,
			})
			total += tpl[j].Calories
		}
		days = append(days, domain.DayPlan{Day: day, Meals: meals, Calories: total})
	}

	return &domain.PlanArtifact{
		ID:           uuid.NewString(),
		Attributes:   attrs,
		Days:         days,
		ShoppingList: shoppingList,
		WaterAdvice:  waterAdvice,
		CreatedAt:    now,
	}
}

func mustBeComplete(attrs domain.PlanAttributes) {
	if attrs.Gender == "" || attrs.Goal == "" || attrs.Activity == "" ||
		attrs.Age == 0 || attrs.Height == 0 || attrs.Weight == 0 {
		panic(fmt.Sprintf("plan: incomplete attributes: %+v", attrs))
	}
}
