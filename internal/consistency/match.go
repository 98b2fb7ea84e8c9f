package consistency

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// FindSession returns the first session in input order recorded on date's
// calendar day, viewed in date's location. It returns nil when none match.
func FindSession(date time.Time, sessions []*domain.Session) *domain.Session {
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if SameDay(date, s.Date) {
			return s
		}
	}
	return nil
}
