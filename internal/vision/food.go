package vision

import (
	"errors"
	"fmt"
	"strings"
)

// FoodAnalysis is the structure requested from the model for a meal.
type FoodAnalysis struct {
	Foods []FoodEstimate `json:"foods"`
	Total MacroEstimate  `json:"total"`
}

type FoodEstimate struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type MacroEstimate struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

const foodSystemPrompt = `You are a nutrition assistant. Identify each food and estimate its macronutrients.
Reply with JSON only, in exactly this shape:
{"foods":[{"name":"...","quantity":"...","calories":0,"protein_g":0,"carbs_g":0,"fat_g":0}],
 "total":{"calories":0,"protein_g":0,"carbs_g":0,"fat_g":0}}
Use grams for macronutrients and kcal for calories. Never include comments.`

// FoodPhotoRequest builds the request for analysing a meal photo.
func FoodPhotoRequest(image []byte, hint string) AnalyzeRequest {
	prompt := "Analyse the meal in this photo."
	if hint = strings.TrimSpace(hint); hint != "" {
		prompt += " The user describes it as: " + hint
	}
	return AnalyzeRequest{
		Task:         TaskFoodPhoto,
		SystemPrompt: foodSystemPrompt,
		Prompt:       prompt,
		Images:       [][]byte{image},
		JSON:         true,
	}
}

// FoodTextRequest builds the request for estimating a written meal
// description.
func FoodTextRequest(description string) AnalyzeRequest {
	return AnalyzeRequest{
		Task:         TaskFoodText,
		SystemPrompt: foodSystemPrompt,
		Prompt:       "Estimate this meal: " + strings.TrimSpace(description),
		JSON:         true,
	}
}

// ValidateFoodAnalysis rejects replies with no foods, blank names, or
// negative amounts. A zero total is filled in later from the items.
func ValidateFoodAnalysis(a FoodAnalysis) error {
	if len(a.Foods) == 0 {
		return errors.New("no foods recognised")
	}
	for i, f := range a.Foods {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("foods[%d].name is empty", i)
		}
		if f.Calories < 0 || f.ProteinG < 0 || f.CarbsG < 0 || f.FatG < 0 {
			return fmt.Errorf("foods[%d] %q has a negative amount", i, f.Name)
		}
	}
	t := a.Total
	if t.Calories < 0 || t.ProteinG < 0 || t.CarbsG < 0 || t.FatG < 0 {
		return errors.New("total has a negative amount")
	}
	return nil
}
