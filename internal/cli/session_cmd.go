package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"s"},
		Short:   "Log workout sessions",
	}

	cmd.AddCommand(
		newSessionStartCmd(a),
		newSessionCompleteCmd(a),
		newSessionCheckCmd(a),
		newSessionAddCmd(a),
		newSessionListCmd(a),
		newSessionShowCmd(a),
		newSessionRemoveCmd(a),
	)

	return cmd
}

func newSessionStartCmd(a *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a session from the plan for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.dateOrToday(dateFlag)
			if err != nil {
				return err
			}
			s, err := a.startSessionUseCase().StartFromPlan(context.Background(), a.user, date)
			if err != nil {
				return err
			}
			a.localize(s)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to start (YYYY-MM-DD, today, yesterday)")
	return cmd
}

func newSessionCompleteCmd(a *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark every exercise of a day as done",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.dateOrToday(dateFlag)
			if err != nil {
				return err
			}
			s, err := a.Sessions.MarkDayComplete(context.Background(), a.user, date)
			if err != nil {
				return err
			}
			a.localize(s)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Day marked complete."))
			a.localize(s)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to complete (YYYY-MM-DD, today, yesterday)")
	return cmd
}

func newSessionCheckCmd(a *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "check SESSION_ID EXERCISE",
		Short: "Tick off one exercise by ID or name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sessionID, err := resolveSessionID(ctx, a, args[0])
			if err != nil {
				return err
			}
			exerciseID, err := resolveExerciseID(ctx, a, sessionID, args[1])
			if err != nil {
				return err
			}
			s, err := a.Sessions.SetExerciseCompleted(ctx, sessionID, exerciseID, !undo)
			if err != nil {
				return err
			}
			a.localize(s)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the exercise as not done")
	return cmd
}

func newSessionAddCmd(a *App) *cobra.Command {
	var done bool

	cmd := &cobra.Command{
		Use:   "add SESSION_ID EXERCISE_SPEC",
		Short: "Add an unplanned exercise to a session",
		Example: `  cadence session add 1a2b3c4d "Face Pull:3x15@20" --done`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sessionID, err := resolveSessionID(ctx, a, args[0])
			if err != nil {
				return err
			}
			planned, err := parseExerciseSpec(args[1])
			if err != nil {
				return err
			}
			s, err := a.Sessions.AddExercise(ctx, sessionID, domain.LoggedFromPlanned("", planned, done))
			if err != nil {
				return err
			}
			a.localize(s)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}

	cmd.Flags().BoolVar(&done, "done", false, "Log the exercise as already done")
	return cmd
}

func newSessionListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List logged sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := a.Sessions.List(context.Background(), a.user)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No sessions logged yet."))
				return nil
			}
			a.localize(sessions...)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions))
			return nil
		},
	}
}

func newSessionShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SESSION_ID",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, a, args[0])
			if err != nil {
				return err
			}
			s, err := a.Sessions.Get(ctx, id)
			if err != nil {
				return err
			}
			a.localize(s)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}
}

func newSessionRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SESSION_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.Sessions.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s removed.\n", formatter.TruncID(id))
			return nil
		},
	}
}
