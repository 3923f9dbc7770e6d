package handlers

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/vmaleev/nutriplan-bot/internal/errors"
)

// Допустимые диапазоны анкеты и чек-ина.
const (
	minAge, maxAge       = 10, 100
	minHeight, maxHeight = 100, 250
	minWeight, maxWeight = 30.0, 300.0
	minWaist, maxWaist   = 50, 200
	minScore, maxScore   = 1, 5
)

// Details is the parsed "age, height, weight" wizard input.
type Details struct {
	Age    int
	Height int
	Weight float64
}

// CheckInInput is the parsed "weight, waist, wellbeing, sleep" input.
type CheckInInput struct {
	Weight    float64
	Waist     int
	Wellbeing int
	Sleep     int
}

func splitFields(text string, want int) ([]string, error) {
	parts := strings.Split(text, ",")
	if len(parts) != want {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Нужно %d значения через запятую, а получено %d. Попробуйте еще раз.", want, len(parts)))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// ParseDetails validates the free-text answer of the final wizard step.
// Any violation returns a validation error with a human-readable reason;
// the caller stays on the same step.
func ParseDetails(text string) (*Details, error) {
	parts, err := splitFields(text, 3)
	if err != nil {
		return nil, err
	}

	age, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, apperrors.NewValidationError("Возраст должен быть целым числом, например 30.")
	}
	if age < minAge || age > maxAge {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Возраст должен быть от %d до %d лет.", minAge, maxAge))
	}

	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, apperrors.NewValidationError("Рост должен быть целым числом в сантиметрах, например 180.")
	}
	if height < minHeight || height > maxHeight {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Рост должен быть от %d до %d см.", minHeight, maxHeight))
	}

	weight, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, apperrors.NewValidationError("Вес должен быть числом в килограммах, например 75.5.")
	}
	if weight < minWeight || weight > maxWeight {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Вес должен быть от %.0f до %.0f кг.", minWeight, maxWeight))
	}

	return &Details{Age: age, Height: height, Weight: weight}, nil
}

// ParseCheckIn validates the free-text check-in tuple.
func ParseCheckIn(text string) (*CheckInInput, error) {
	parts, err := splitFields(text, 4)
	if err != nil {
		return nil, err
	}

	weight, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, apperrors.NewValidationError("Вес должен быть числом в килограммах, например 75.5.")
	}
	if weight < minWeight || weight > maxWeight {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Вес должен быть от %.0f до %.0f кг.", minWeight, maxWeight))
	}

	waist, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, apperrors.NewValidationError("Обхват талии должен быть целым числом в сантиметрах.")
	}
	if waist < minWaist || waist > maxWaist {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Обхват талии должен быть от %d до %d см.", minWaist, maxWaist))
	}

	wellbeing, err := strconv.Atoi(parts[2])
	if err != nil || wellbeing < minScore || wellbeing > maxScore {
		return nil, apperrors.NewValidationError("Самочувствие оценивается целым числом от 1 до 5.")
	}

	sleep, err := strconv.Atoi(parts[3])
	if err != nil || sleep < minScore || sleep > maxScore {
		return nil, apperrors.NewValidationError("Качество сна оценивается целым числом от 1 до 5.")
	}

	return &CheckInInput{Weight: weight, Waist: waist, Wellbeing: wellbeing, Sleep: sleep}, nil
}
