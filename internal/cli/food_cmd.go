package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/spf13/cobra"
)

func newFoodCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Log meals and see daily nutrition",
	}

	cmd.AddCommand(
		newFoodAnalyzeCmd(a),
		newFoodEstimateCmd(a),
		newFoodLogCmd(a),
		newFoodDayCmd(a),
		newFoodRemoveCmd(a),
	)

	return cmd
}

func newFoodAnalyzeCmd(a *App) *cobra.Command {
	var hint, at string

	cmd := &cobra.Command{
		Use:   "analyze PHOTO",
		Short: "Estimate a meal's macros from a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loggedAt, err := a.loggedAt(at)
			if err != nil {
				return err
			}
			log, err := a.analyzeFoodUseCase().AnalyzePhoto(context.Background(), app.PhotoFoodRequest{
				UserID:   a.user,
				Path:     args[0],
				LoggedAt: loggedAt,
				Hint:     hint,
			})
			if err != nil {
				return visionHint(err)
			}
			a.localizeFood(log)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFoodLog(log))
			return nil
		},
	}

	cmd.Flags().StringVar(&hint, "hint", "", "What the meal is, to help the model")
	cmd.Flags().StringVar(&at, "at", "", "When it was eaten (HH:MM or YYYY-MM-DD HH:MM)")
	return cmd
}

func newFoodEstimateCmd(a *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "estimate DESCRIPTION...",
		Short: "Estimate a meal's macros from a text description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loggedAt, err := a.loggedAt(at)
			if err != nil {
				return err
			}
			log, err := a.Nutrition.EstimateText(context.Background(), a.user, strings.Join(args, " "), loggedAt)
			if err != nil {
				return visionHint(err)
			}
			a.localizeFood(log)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFoodLog(log))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "When it was eaten (HH:MM or YYYY-MM-DD HH:MM)")
	return cmd
}

func newFoodLogCmd(a *App) *cobra.Command {
	var desc, at string
	var total domain.Macros

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a meal with known macros",
		RunE: func(cmd *cobra.Command, args []string) error {
			loggedAt, err := a.loggedAt(at)
			if err != nil {
				return err
			}
			log, err := a.Nutrition.LogManual(context.Background(), app.ManualFoodRequest{
				UserID:      a.user,
				LoggedAt:    loggedAt,
				Description: desc,
				Total:       total,
			})
			if err != nil {
				return err
			}
			a.localizeFood(log)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFoodLog(log))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "What you ate (required)")
	cmd.Flags().Float64Var(&total.Calories, "calories", 0, "Energy in kcal")
	cmd.Flags().Float64Var(&total.ProteinG, "protein", 0, "Protein in grams")
	cmd.Flags().Float64Var(&total.CarbsG, "carbs", 0, "Carbohydrates in grams")
	cmd.Flags().Float64Var(&total.FatG, "fat", 0, "Fat in grams")
	cmd.Flags().StringVar(&at, "at", "", "When it was eaten (HH:MM or YYYY-MM-DD HH:MM)")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newFoodDayCmd(a *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show a day's meals and macro totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.dateOrToday(dateFlag)
			if err != nil {
				return err
			}
			daily, err := a.Nutrition.DailyTotals(context.Background(), a.user, date)
			if err != nil {
				return err
			}
			a.localizeFood(daily.Logs...)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDailyNutrition(daily))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to show (YYYY-MM-DD, today, yesterday)")
	return cmd
}

func newFoodRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a food log",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Nutrition.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Food log %s removed.\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}

// visionHint adds the setting to flip when analysis is switched off.
func visionHint(err error) error {
	if errors.Is(err, service.ErrVisionDisabled) {
		return fmt.Errorf("%w (set CADENCE_VISION_ENABLED=true to use it)", err)
	}
	return err
}

// loggedAt reads an --at flag. A bare HH:MM is taken on today's date.
func (a *App) loggedAt(s string) (time.Time, error) {
	now, err := a.now()
	if err != nil {
		return time.Time{}, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	loc := a.location()
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("15:04", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: use HH:MM or YYYY-MM-DD HH:MM, got %q", s)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

func (a *App) localizeFood(logs ...*domain.FoodLog) {
	loc := a.location()
	for _, l := range logs {
		if l != nil {
			l.LoggedAt = l.LoggedAt.In(loc)
		}
	}
}
