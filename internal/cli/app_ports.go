package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
)

func (a *App) startSessionUseCase() app.StartSessionUseCase {
	if a.StartSession != nil {
		return a.StartSession
	}
	return a.Sessions
}

func (a *App) analyzeFoodUseCase() app.AnalyzeFoodUseCase {
	if a.AnalyzeFood != nil {
		return a.AnalyzeFood
	}
	return a.Nutrition
}

func (a *App) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// now is the wall clock in the configured zone. With --today set, the date
// is replaced and the time of day kept.
func (a *App) now() (time.Time, error) {
	clock := a.clock
	if clock == nil {
		clock = time.Now
	}
	now := clock().In(a.location())
	if a.today == "" {
		return now, nil
	}
	d, err := parseDate(a.today, a.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("--today: %w", err)
	}
	y, m, dd := d.Date()
	return time.Date(y, m, dd, now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}

func (a *App) consistencyRequest() (app.ConsistencyRequest, error) {
	now, err := a.now()
	if err != nil {
		return app.ConsistencyRequest{}, err
	}
	return app.ConsistencyRequest{UserID: a.user, Now: &now}, nil
}

// dateOrToday parses an optional --date flag relative to now.
func (a *App) dateOrToday(s string) (time.Time, error) {
	now, err := a.now()
	if err != nil {
		return time.Time{}, err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}
	return parseDate(s, a.location())
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("use YYYY-MM-DD format, got %q", s)
	}
	return t, nil
}

// localize moves stored UTC timestamps into the configured zone for display.
func (a *App) localize(sessions ...*domain.Session) {
	loc := a.location()
	for _, s := range sessions {
		if s != nil {
			s.Date = s.Date.In(loc)
		}
	}
}
