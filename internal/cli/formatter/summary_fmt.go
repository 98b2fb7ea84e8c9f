package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/app"
)

func FormatSummary(resp *app.SummaryResponse) string {
	if resp.Weeks == 0 {
		return RenderBox("Consistency", Dim("Nothing planned or logged yet."))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Overall   %s\n", RenderProgress(resp.Score, scoreBarWidth))
	fmt.Fprintf(&b, "Completed %d of %d planned exercises over %d weeks\n",
		resp.CompletedExercises, resp.TotalExercises, resp.Weeks)
	if resp.BestWeekNumber > 0 {
		fmt.Fprintf(&b, "Best week %s\n", ScoreStyle(resp.BestWeekScore).Render(
			fmt.Sprintf("#%d at %d%%", resp.BestWeekNumber, resp.BestWeekScore)))
	}
	streak := fmt.Sprintf("%d day", resp.CurrentStreak)
	if resp.CurrentStreak != 1 {
		streak += "s"
	}
	fmt.Fprintf(&b, "Streak    %s", Bold(streak))
	return RenderBox("Consistency", b.String())
}

func FormatExercises(resp *app.ExercisesResponse) string {
	if len(resp.Exercises) == 0 {
		return Dim("No exercises found.") + "\n"
	}
	headers := []string{"EXERCISE", "MUSCLE", "DONE", "MISSED", "RATE"}
	rows := make([][]string, len(resp.Exercises))
	for i, ex := range resp.Exercises {
		rows[i] = []string{
			ex.Name,
			MuscleBadge(ex.MuscleGroup),
			fmt.Sprintf("%d/%d", ex.TimesCompleted, ex.Count),
			fmt.Sprintf("%d", ex.MissedCount),
			ScoreStyle(ex.CompletionRate).Render(fmt.Sprintf("%d%%", ex.CompletionRate)),
		}
	}
	return RenderBox("Exercises", RenderTable(headers, rows))
}
