package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 5

// FormatCalendar renders a Monday-first month grid. Each cell shows the day
// number and its status glyph.
func FormatCalendar(resp *app.CalendarResponse) string {
	var b strings.Builder

	for _, d := range domain.AllWeekdays() {
		b.WriteString(StyleHeader.Render(pad(d.String()[:2], cellWidth)))
	}
	b.WriteString("\n")

	col := 0
	if len(resp.Cells) > 0 {
		col = int(resp.Cells[0].Weekday)
		b.WriteString(strings.Repeat(" ", col*cellWidth))
	}
	for _, c := range resp.Cells {
		text := fmt.Sprintf("%2d%s", c.Date.Day(), CellGlyph(c.Status))
		if consistency.SameDay(c.Date, resp.Today) {
			text = StyleBold.Underline(true).Render(text)
		} else {
			text = CellStyle(c.Status).Render(text)
		}
		b.WriteString(pad(text, cellWidth))
		col++
		if col == domain.DaysPerWeek {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n" + calendarLegend(resp.Cells))
	title := fmt.Sprintf("%s %d", resp.Month, resp.Year)
	return RenderBox(title, b.String())
}

func calendarLegend(cells []consistency.DayCell) string {
	counts := make(map[consistency.CellStatus]int)
	for _, c := range cells {
		counts[c.Status]++
	}
	order := []consistency.CellStatus{
		consistency.CellDone, consistency.CellPartial, consistency.CellMissed,
		consistency.CellPending, consistency.CellUpcoming, consistency.CellRest,
	}
	parts := make([]string, 0, len(order))
	for _, s := range order {
		parts = append(parts, CellStyle(s).Render(fmt.Sprintf("%s %s %d", CellGlyph(s), s, counts[s])))
	}
	return strings.Join(parts, "  ")
}

// pad right-pads s to width visible columns.
func pad(s string, width int) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
