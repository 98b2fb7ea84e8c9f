package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes day relative to today by calendar day, in today's
// zone.
func RelativeDay(day, today time.Time) string {
	loc := today.Location()
	diff := consistency.DaysBetween(today, day.In(loc))
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff > 0:
		return fmt.Sprintf("In %dd", diff)
	default:
		return fmt.Sprintf("%dd ago", -diff)
	}
}

// ShortDate formats a day as "Mon Jan 15".
func ShortDate(t time.Time) string {
	return t.Format("Mon Jan 2")
}

func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// SetsReps formats volume as "4×8". Zero sets or reps print as "-".
func SetsReps(sets, reps int) string {
	if sets <= 0 && reps <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d×%d", sets, reps)
}

// Weight drops a trailing ".0" so whole kilos print as "60 kg".
func Weight(kg float64) string {
	if kg <= 0 {
		return "-"
	}
	return strconv.FormatFloat(kg, 'f', -1, 64) + " kg"
}

// CompletedMark shows the tri-state flag: an unset flag counts as done and
// is shown dimmed.
func CompletedMark(e domain.LoggedExercise) string {
	switch {
	case e.Completed == nil:
		return StyleDim.Render("✔")
	case *e.Completed:
		return StyleGreen.Render("✔")
	default:
		return StyleRed.Render("✖")
	}
}

// Macros formats a macro total as "kcal 650 · P 40g · C 70g · F 20g".
func Macros(m domain.Macros) string {
	return fmt.Sprintf("kcal %s · P %sg · C %sg · F %sg",
		num(m.Calories), num(m.ProteinG), num(m.CarbsG), num(m.FatG))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
