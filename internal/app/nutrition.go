package app

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

type ManualFoodRequest struct {
	UserID      string
	LoggedAt    time.Time
	Description string
	Items       []domain.FoodItem
	// Total is used as given when Items is empty; otherwise it is derived.
	Total domain.Macros
}

type PhotoFoodRequest struct {
	UserID   string
	Path     string
	LoggedAt time.Time
	// Hint is an optional free-text description passed to the model.
	Hint string
}

type DailyNutrition struct {
	Date  time.Time
	Logs  []*domain.FoodLog
	Total domain.Macros
}
