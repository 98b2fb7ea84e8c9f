package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreStyle colors a 0-100 consistency score: green from 67, yellow from
// 34, red below.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 67:
		return StyleGreen
	case score >= 34:
		return StyleYellow
	default:
		return StyleRed
	}
}

// CellGlyph is the one-character marker for a calendar status.
func CellGlyph(status consistency.CellStatus) string {
	switch status {
	case consistency.CellDone:
		return "✔"
	case consistency.CellPartial:
		return "◐"
	case consistency.CellMissed:
		return "✖"
	case consistency.CellPending:
		return "●"
	case consistency.CellUpcoming:
		return "○"
	default:
		return "·"
	}
}

func CellStyle(status consistency.CellStatus) lipgloss.Style {
	switch status {
	case consistency.CellDone:
		return StyleGreen
	case consistency.CellPartial:
		return StyleYellow
	case consistency.CellMissed:
		return StyleRed
	case consistency.CellPending:
		return StyleBlue
	case consistency.CellUpcoming:
		return StyleFg
	default:
		return StyleDim
	}
}

// EntryPill renders a history entry kind such as "✔ Logged".
func EntryPill(e consistency.DayEntry) string {
	switch e.Kind {
	case consistency.EntryLogged:
		if e.Session != nil && e.Session.CompletedCount() < len(e.Exercises) {
			return StyleYellow.Render("◐ Partial")
		}
		return StyleGreen.Render("✔ Logged")
	case consistency.EntryMissed:
		return StyleRed.Render("✖ Missed")
	case consistency.EntryPending:
		return StyleBlue.Render("● Today")
	default:
		return StyleDim.Render(string(e.Kind))
	}
}

// MuscleBadge renders a muscle group tag in purple.
func MuscleBadge(g domain.MuscleGroup) string {
	if g == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(g))
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
