package cli

import (
	"strings"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cadenceHuhTheme returns a huh theme built on the formatter palette.
func cadenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dayFormValues backs the plan edit form. Exercises hold one spec per line.
type dayFormValues struct {
	title     string
	rest      bool
	exercises string
}

func newDayFormValues(dp domain.DayPlan) *dayFormValues {
	lines := make([]string, 0, len(dp.Exercises))
	for _, e := range dp.Exercises {
		lines = append(lines, formatExerciseSpec(e))
	}
	return &dayFormValues{
		title:     dp.Title,
		rest:      dp.IsRestDay,
		exercises: strings.Join(lines, "\n"),
	}
}

func (v *dayFormValues) dayPlan() (domain.DayPlan, error) {
	if v.rest {
		return domain.RestDay(), nil
	}
	planned, err := parseExerciseSpecs(strings.Split(v.exercises, "\n"))
	if err != nil {
		return domain.DayPlan{}, err
	}
	return domain.DayPlan{Title: strings.TrimSpace(v.title), Exercises: planned}, nil
}

func validateExerciseLines(s string) error {
	_, err := parseExerciseSpecs(strings.Split(s, "\n"))
	return err
}

func dayPlanForm(day domain.Weekday, v *dayFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(day.String()+" title").
				Placeholder("Push").
				Value(&v.title),
			huh.NewConfirm().
				Title("Rest day?").
				Value(&v.rest),
			huh.NewText().
				Title("Exercises").
				Description("One per line: NAME:SETSxREPS@KG").
				Value(&v.exercises).
				Validate(validateExerciseLines),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)
}
