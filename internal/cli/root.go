package cli

import (
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/spf13/cobra"
)

const defaultUser = "default"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans       service.PlanService
	Sessions    service.SessionService
	Consistency service.ConsistencyService
	Nutrition   service.NutritionService

	// Optional use-case overrides; nil falls back to the services above.
	StartSession app.StartSessionUseCase
	AnalyzeFood  app.AnalyzeFoodUseCase

	// Location is the zone calendar days are counted in. Nil means time.Local.
	Location *time.Location

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	user  string
	today string
	// clock is replaced in tests.
	clock func() time.Time
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cadence",
		Short:         "Weekly workout plan and consistency tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.user, "user", defaultUser, "User whose plan and log to use")
	root.PersistentFlags().StringVar(&a.today, "today", "", "Treat this date (YYYY-MM-DD) as today")

	root.AddCommand(
		newPlanCmd(a),
		newSessionCmd(a),
		newHistoryCmd(a),
		newWeeksCmd(a),
		newExercisesCmd(a),
		newCalendarCmd(a),
		newSummaryCmd(a),
		newFoodCmd(a),
	)

	return root
}
