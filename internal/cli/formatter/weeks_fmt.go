package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/consistency"
)

const scoreBarWidth = 16

// FormatWeeks renders the week list newest first.
func FormatWeeks(weeks []consistency.WeekBucket) string {
	if len(weeks) == 0 {
		return Dim("No weeks to show.") + "\n"
	}
	headers := []string{"WEEK", "DATES", "SCORE", "DONE"}
	rows := make([][]string, len(weeks))
	for i, w := range weeks {
		rows[i] = []string{
			fmt.Sprintf("%d", w.Number),
			WeekRange(w),
			RenderProgress(w.ConsistencyScore(), scoreBarWidth),
			fmt.Sprintf("%d/%d", w.CompletedExercises, w.TotalExercises),
		}
	}
	return RenderBox("Weeks", RenderTable(headers, rows))
}

// WeekRange formats a week as "Jan 15 – Jan 21".
func WeekRange(w consistency.WeekBucket) string {
	return w.Start.Format("Jan 2") + " – " + w.End().Format("Jan 2")
}

// FormatWeekDetail renders one week's days and per-exercise stats.
func FormatWeekDetail(w consistency.WeekBucket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", WeekRange(w), RenderProgress(w.ConsistencyScore(), scoreBarWidth))

	for _, d := range w.Days {
		fmt.Fprintf(&b, "%-10s %s  %s\n", ShortDate(d.Date), EntryPill(d), d.Title)
	}

	if len(w.Exercises) > 0 {
		b.WriteString("\n")
		headers := []string{"EXERCISE", "MUSCLE", "DONE", "MISSED", "SETS", "REPS"}
		rows := make([][]string, len(w.Exercises))
		for i, st := range w.Exercises {
			rows[i] = []string{
				st.Name,
				MuscleBadge(st.MuscleGroup),
				fmt.Sprintf("%d/%d", st.TimesCompleted, st.Count),
				fmt.Sprintf("%d", st.MissedCount),
				fmt.Sprintf("%d/%d", st.CompletedSets, st.PlannedSets),
				fmt.Sprintf("%d/%d", st.CompletedReps, st.PlannedReps),
			}
		}
		b.WriteString(RenderTable(headers, rows))
	}
	return RenderBox(fmt.Sprintf("Week %d", w.Number), b.String())
}
