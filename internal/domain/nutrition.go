package domain

import "time"

type FoodSource string

const (
	FoodSourceManual  FoodSource = "manual"
	FoodSourceAIPhoto FoodSource = "ai_photo"
	FoodSourceAIText  FoodSource = "ai_text"
)

// Macros holds the nutrition totals for a food item or a whole log.
type Macros struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		ProteinG: m.ProteinG + o.ProteinG,
		CarbsG:   m.CarbsG + o.CarbsG,
		FatG:     m.FatG + o.FatG,
	}
}

type FoodItem struct {
	Name     string
	Quantity string
	Macros
}

type FoodLog struct {
	ID          string
	UserID      string
	LoggedAt    time.Time
	Description string
	PhotoPath   string
	Source      FoodSource
	Items       []FoodItem
	Total       Macros
	CreatedAt   time.Time
}

// ItemTotal sums the macros of the individual items.
func (f *FoodLog) ItemTotal() Macros {
	var m Macros
	for _, it := range f.Items {
		m = m.Add(it.Macros)
	}
	return m
}
