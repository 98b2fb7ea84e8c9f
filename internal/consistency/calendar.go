package consistency

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// CellStatus is how a calendar day shows up in the month grid.
type CellStatus string

const (
	CellDone     CellStatus = "done"
	CellPartial  CellStatus = "partial"
	CellMissed   CellStatus = "missed"
	CellPending  CellStatus = "pending"
	CellUpcoming CellStatus = "upcoming"
	CellRest     CellStatus = "rest"
)

// DayCell annotates one day of a month grid.
type DayCell struct {
	Date      time.Time
	Weekday   domain.Weekday
	Status    CellStatus
	Title     string
	Planned   int
	Completed int
	// SessionID is empty when nothing with exercises was logged that day.
	SessionID string
}

// MonthCalendar annotates every day of the given month. It resolves each
// day independently with FindSession and ResolveDay, so it works for past,
// current and future months alike. today supplies the zone and the
// past/today/future boundary.
func MonthCalendar(year int, month time.Month, sessions []*domain.Session, plan *domain.WeeklyPlan, today time.Time) []DayCell {
	loc := today.Location()
	now := StartOfDay(today, loc)
	first := dayStart(year, month, 1, loc)

	var cells []DayCell
	for d := first; d.Month() == month; d = AddDays(d, 1) {
		cells = append(cells, annotateDay(d, now, sessions, plan))
	}
	return cells
}

func annotateDay(d, today time.Time, sessions []*domain.Session, plan *domain.WeeklyPlan) DayCell {
	cell := DayCell{Date: d, Weekday: domain.WeekdayOf(d)}

	if s := FindSession(d, sessions); s.HasExercises() {
		cell.SessionID = s.ID
		cell.Title = s.Title
		cell.Planned = len(s.Exercises)
		cell.Completed = s.CompletedCount()
		switch {
		case cell.Completed == cell.Planned:
			cell.Status = CellDone
		case cell.Completed > 0:
			cell.Status = CellPartial
		default:
			cell.Status = timeStatus(d, today)
		}
		return cell
	}

	day, ok := ResolvePlan(d, plan)
	if !ok {
		cell.Status = CellRest
		return cell
	}
	cell.Title = day.Title
	cell.Planned = len(day.Exercises)
	cell.Status = timeStatus(d, today)
	return cell
}

func timeStatus(d, today time.Time) CellStatus {
	switch {
	case keyOf(d) == keyOf(today):
		return CellPending
	case d.Before(today):
		return CellMissed
	default:
		return CellUpcoming
	}
}
