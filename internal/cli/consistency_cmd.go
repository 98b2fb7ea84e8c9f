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
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show logged, missed and pending days",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.consistencyRequest()
			if err != nil {
				return err
			}
			resp, err := a.Consistency.History(context.Background(), app.HistoryRequest{ConsistencyRequest: req, Days: days})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(resp.Entries, *req.Now))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 0, "Only the most recent N days (0 = all)")
	return cmd
}

func newWeeksCmd(a *App) *cobra.Command {
	var browse bool
	var number int

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Show weekly consistency scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.consistencyRequest()
			if err != nil {
				return err
			}
			resp, err := a.Consistency.Weeks(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case number > 0:
				for _, w := range resp.Weeks {
					if w.Number == number {
						fmt.Fprint(out, formatter.FormatWeekDetail(w))
						return nil
					}
				}
				return fmt.Errorf("week %d not found; there are %d weeks", number, len(resp.Weeks))
			case browse:
				if !a.interactive() {
					return errors.New("--browse needs an interactive terminal")
				}
				_, err := tea.NewProgram(newWeekBrowser(resp.Weeks), tea.WithOutput(out)).Run()
				return err
			}
			fmt.Fprint(out, formatter.FormatWeeks(resp.Weeks))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&browse, "browse", "b", false, "Page through weeks interactively")
	cmd.Flags().IntVarP(&number, "week", "w", 0, "Show the detail of week N (1 = oldest)")
	return cmd
}

func newExercisesCmd(a *App) *cobra.Command {
	var muscle string

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Show per-exercise completion across all weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.consistencyRequest()
			if err != nil {
				return err
			}
			exReq := app.ExercisesRequest{ConsistencyRequest: req}
			if muscle != "" {
				g, ok := domain.ParseMuscleGroup(muscle)
				if !ok {
					return fmt.Errorf("unknown muscle group %q; use one of %s", muscle, muscleGroupNames())
				}
				exReq.Muscle = g
			}
			resp, err := a.Consistency.Exercises(context.Background(), exReq)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExercises(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&muscle, "muscle", "m", "", "Only exercises for this muscle group")
	return cmd
}

func muscleGroupNames() string {
	names := make([]string, len(domain.AllMuscleGroups))
	for i, g := range domain.AllMuscleGroups {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

func newCalendarCmd(a *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month grid of workout days",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.consistencyRequest()
			if err != nil {
				return err
			}
			calReq := app.CalendarRequest{ConsistencyRequest: req}
			if month != "" {
				m, err := time.Parse("2006-01", strings.TrimSpace(month))
				if err != nil {
					return fmt.Errorf("--month: use YYYY-MM format, got %q", month)
				}
				calReq.Year, calReq.Month = m.Year(), m.Month()
			}
			resp, err := a.Consistency.Calendar(context.Background(), calReq)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default this month)")
	return cmd
}

func newSummaryCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show overall score, best week and current streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.consistencyRequest()
			if err != nil {
				return err
			}
			resp, err := a.Consistency.Summary(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(resp))
			return nil
		},
	}
}
