package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newPlanCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "View and edit the weekly workout plan",
	}

	cmd.AddCommand(
		newPlanShowCmd(a),
		newPlanSetCmd(a),
		newPlanClearCmd(a),
		newPlanEditCmd(a),
		newPlanImportCmd(a),
		newPlanExportCmd(a),
	)

	return cmd
}

func newPlanShowCmd(a *App) *cobra.Command {
	var day domain.Weekday
	dayFlag := newWeekdayValue(&day)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the weekly plan or a single day",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.Plans.Get(context.Background(), a.user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("day") {
				fmt.Fprint(out, formatter.FormatDayPlan(day, plan.Day(day)))
				return nil
			}
			fmt.Fprint(out, formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().Var(dayFlag, "day", "Only show this weekday")
	return cmd
}

func newPlanSetCmd(a *App) *cobra.Command {
	var day domain.Weekday
	var title string
	var exercises []string
	var rest bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace one weekday of the plan",
		Example: `  cadence plan set --day mon --title Push --exercise "Bench Press:4x8@60" --exercise "Dips:3x10"
  cadence plan set --day sun --rest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rest && len(exercises) > 0 {
				return fmt.Errorf("--rest cannot be combined with --exercise")
			}
			planned, err := parseExerciseSpecs(exercises)
			if err != nil {
				return err
			}
			if !rest && len(planned) == 0 {
				return fmt.Errorf("give at least one --exercise, or --rest")
			}

			dp := domain.DayPlan{Title: title, Exercises: planned, IsRestDay: rest}
			plan, err := a.Plans.SetDay(context.Background(), a.user, day, dp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(fmt.Sprintf("Updated %s.", day)))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayPlan(day, plan.Day(day)))
			return nil
		},
	}

	cmd.Flags().Var(newWeekdayValue(&day), "day", "Weekday to set (required)")
	cmd.Flags().StringVar(&title, "title", "", "Day title, e.g. Push")
	cmd.Flags().StringArrayVarP(&exercises, "exercise", "e", nil, "Exercise as NAME[:SETSxREPS[@KG]] (repeatable)")
	cmd.Flags().BoolVar(&rest, "rest", false, "Mark the day as a rest day")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newPlanClearCmd(a *App) *cobra.Command {
	var day domain.Weekday

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Turn a weekday back into a rest day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.Plans.ClearDay(context.Background(), a.user, day); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(fmt.Sprintf("%s is now a rest day.", day)))
			return nil
		},
	}

	cmd.Flags().Var(newWeekdayValue(&day), "day", "Weekday to clear (required)")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newPlanEditCmd(a *App) *cobra.Command {
	var day domain.Weekday

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a weekday interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("plan edit needs an interactive terminal; use 'plan set' instead")
			}
			ctx := context.Background()
			plan, err := a.Plans.Get(ctx, a.user)
			if err != nil {
				return err
			}

			values := newDayFormValues(plan.Day(day))
			if err := dayPlanForm(day, values).Run(); err != nil {
				return err
			}
			dp, err := values.dayPlan()
			if err != nil {
				return err
			}

			plan, err = a.Plans.SetDay(ctx, a.user, day, dp)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayPlan(day, plan.Day(day)))
			return nil
		},
	}

	cmd.Flags().Var(newWeekdayValue(&day), "day", "Weekday to edit (required)")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newPlanImportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the whole plan from a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.Plans.ImportFile(context.Background(), a.user, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Plan imported."))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}
	return cmd
}

func newPlanExportCmd(a *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plan as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if outPath == "" {
				return a.Plans.Export(ctx, a.user, cmd.OutOrStdout())
			}

			if err := exportPlanFile(ctx, a, outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "File to write instead of stdout")
	return cmd
}

func exportPlanFile(ctx context.Context, a *App, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	return a.Plans.Export(ctx, a.user, f)
}
