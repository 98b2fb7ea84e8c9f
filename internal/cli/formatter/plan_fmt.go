package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatPlan renders the weekly plan, one row per weekday.
func FormatPlan(p *domain.WeeklyPlan) string {
	headers := []string{"DAY", "TITLE", "EXERCISES"}
	rows := make([][]string, 0, domain.DaysPerWeek)
	for _, d := range domain.AllWeekdays() {
		day := p.Day(d)
		switch {
		case day.IsRestDay:
			rows = append(rows, []string{d.String(), Dim("Rest"), ""})
		case len(day.Exercises) == 0:
			rows = append(rows, []string{d.String(), day.Title, Dim("nothing scheduled")})
		default:
			names := make([]string, len(day.Exercises))
			for i, ex := range day.Exercises {
				names[i] = ex.Name
			}
			rows = append(rows, []string{d.String(), day.Title, strings.Join(names, ", ")})
		}
	}
	return RenderBox("Weekly Plan", RenderTable(headers, rows))
}

// FormatDayPlan renders one weekday in full detail.
func FormatDayPlan(d domain.Weekday, day domain.DayPlan) string {
	title := d.String()
	if day.Title != "" {
		title += " · " + day.Title
	}
	if !day.Actionable() {
		return RenderBox(title, Dim("Rest day"))
	}

	headers := []string{"#", "EXERCISE", "MUSCLE", "VOLUME", "WEIGHT"}
	rows := make([][]string, len(day.Exercises))
	for i, ex := range day.Exercises {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			ex.Name,
			MuscleBadge(ex.MuscleGroup),
			SetsReps(ex.Sets, ex.Reps),
			Weight(ex.WeightKg),
		}
	}
	return RenderBox(title, RenderTable(headers, rows))
}
