package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/vision"
	"github.com/google/uuid"
)

type nutritionService struct {
	foods    repository.FoodLogRepo
	uow      db.UnitOfWork
	client   vision.Client
	observer UseCaseObserver
}

// NewNutritionService wires food logging. A nil client disables photo and
// text analysis; manual logging still works.
func NewNutritionService(foods repository.FoodLogRepo, uow db.UnitOfWork, client vision.Client, observers ...UseCaseObserver) NutritionService {
	return &nutritionService{
		foods:    foods,
		uow:      uow,
		client:   client,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *nutritionService) AnalyzePhoto(ctx context.Context, req app.PhotoFoodRequest) (log *domain.FoodLog, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "food_analyze_photo",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    foodFields(req.UserID, log),
		})
	}()

	if s.client == nil {
		return nil, ErrVisionDisabled
	}
	image, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("reading photo: %w", err)
	}
	if ct := http.DetectContentType(image); !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%s is %s, not an image: %w", req.Path, ct, ErrInvalidFood)
	}

	analysis, err := s.analyze(ctx, vision.FoodPhotoRequest(image, req.Hint))
	if err != nil {
		return nil, err
	}

	path := req.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	log = logFromAnalysis(req.UserID, req.LoggedAt, req.Hint, analysis)
	log.PhotoPath = path
	log.Source = domain.FoodSourceAIPhoto
	if err := s.create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *nutritionService) EstimateText(ctx context.Context, userID, description string, at time.Time) (log *domain.FoodLog, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "food_estimate_text",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    foodFields(userID, log),
		})
	}()

	if s.client == nil {
		return nil, ErrVisionDisabled
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required: %w", ErrInvalidFood)
	}
	analysis, err := s.analyze(ctx, vision.FoodTextRequest(description))
	if err != nil {
		return nil, err
	}
	log = logFromAnalysis(userID, at, description, analysis)
	log.Source = domain.FoodSourceAIText
	if err := s.create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// create writes the log and its items in one transaction.
func (s *nutritionService) create(ctx context.Context, log *domain.FoodLog) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteFoodLogRepo(tx).Create(ctx, log); err != nil {
			return fmt.Errorf("saving food log: %w", err)
		}
		return nil
	})
}

func (s *nutritionService) analyze(ctx context.Context, req vision.AnalyzeRequest) (vision.FoodAnalysis, error) {
	resp, err := s.client.Analyze(ctx, req)
	if err != nil {
		return vision.FoodAnalysis{}, fmt.Errorf("analysing food: %w", err)
	}
	analysis, err := vision.ExtractJSON[vision.FoodAnalysis](resp.Text, vision.ValidateFoodAnalysis)
	if err != nil {
		return vision.FoodAnalysis{}, fmt.Errorf("reading food analysis: %w", err)
	}
	return analysis, nil
}

// logFromAnalysis converts a model reply. A reply with an all-zero total
// gets the sum of its items instead.
func logFromAnalysis(userID string, at time.Time, description string, a vision.FoodAnalysis) *domain.FoodLog {
	log := &domain.FoodLog{
		ID:       uuid.New().String(),
		UserID:   userID,
		LoggedAt: at,
	}
	names := make([]string, 0, len(a.Foods))
	for _, f := range a.Foods {
		name := strings.TrimSpace(f.Name)
		names = append(names, name)
		log.Items = append(log.Items, domain.FoodItem{
			Name:     name,
			Quantity: strings.TrimSpace(f.Quantity),
			Macros: domain.Macros{
				Calories: f.Calories,
				ProteinG: f.ProteinG,
				CarbsG:   f.CarbsG,
				FatG:     f.FatG,
			},
		})
	}
	log.Description = domain.CoalesceStr(strings.TrimSpace(description), strings.Join(names, ", "))

	log.Total = domain.Macros{
		Calories: a.Total.Calories,
		ProteinG: a.Total.ProteinG,
		CarbsG:   a.Total.CarbsG,
		FatG:     a.Total.FatG,
	}
	if log.Total == (domain.Macros{}) {
		log.Total = log.ItemTotal()
	}
	return log
}

func (s *nutritionService) LogManual(ctx context.Context, req app.ManualFoodRequest) (log *domain.FoodLog, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "food_log_manual",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    foodFields(req.UserID, log),
		})
	}()

	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return nil, fmt.Errorf("description is required: %w", ErrInvalidFood)
	}
	if negativeMacros(req.Total) {
		return nil, fmt.Errorf("total has a negative amount: %w", ErrInvalidFood)
	}
	for i, it := range req.Items {
		if negativeMacros(it.Macros) {
			return nil, fmt.Errorf("item %d %q has a negative amount: %w", i, it.Name, ErrInvalidFood)
		}
	}

	log = &domain.FoodLog{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		LoggedAt:    req.LoggedAt,
		Description: desc,
		Source:      domain.FoodSourceManual,
		Items:       req.Items,
		Total:       req.Total,
	}
	if len(log.Items) > 0 {
		log.Total = log.ItemTotal()
	}
	if err := s.create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListDay returns the logs on date's calendar day in date's location.
func (s *nutritionService) ListDay(ctx context.Context, userID string, date time.Time) ([]*domain.FoodLog, error) {
	day := consistency.StartOfDay(date, date.Location())
	logs, err := s.foods.ListBetween(ctx, userID, day, consistency.AddDays(day, 1))
	if err != nil {
		return nil, fmt.Errorf("listing food logs: %w", err)
	}
	return logs, nil
}

func (s *nutritionService) DailyTotals(ctx context.Context, userID string, date time.Time) (*app.DailyNutrition, error) {
	logs, err := s.ListDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	out := &app.DailyNutrition{
		Date: consistency.StartOfDay(date, date.Location()),
		Logs: logs,
	}
	for _, l := range logs {
		out.Total = out.Total.Add(l.Total)
	}
	return out, nil
}

func (s *nutritionService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteFoodLogRepo(tx).Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting food log: %w", err)
		}
		return nil
	})
}

func negativeMacros(m domain.Macros) bool {
	return m.Calories < 0 || m.ProteinG < 0 || m.CarbsG < 0 || m.FatG < 0
}

func foodFields(userID string, log *domain.FoodLog) map[string]any {
	fields := map[string]any{"user_id": userID}
	if log != nil {
		fields["food_log_id"] = log.ID
		fields["items"] = len(log.Items)
		fields["calories"] = log.Total.Calories
	}
	return fields
}
