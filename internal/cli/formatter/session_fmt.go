package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatSession renders one session with its exercises. Exercise IDs are
// printed in full because `session check` takes them as arguments.
func FormatSession(s *domain.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(ISODate(s.Date)), Dim("id "+s.ID))
	fmt.Fprintf(&b, "%d of %d exercises done\n\n", s.CompletedCount(), len(s.Exercises))

	if len(s.Exercises) == 0 {
		b.WriteString(Dim("No exercises logged."))
		return RenderBox(sessionTitle(s), b.String())
	}

	headers := []string{"DONE", "EXERCISE", "VOLUME", "WEIGHT", "ID"}
	rows := make([][]string, len(s.Exercises))
	for i, ex := range s.Exercises {
		rows[i] = []string{
			CompletedMark(ex),
			ex.Name,
			SetsReps(ex.Sets, ex.Reps),
			Weight(ex.WeightKg),
			Dim(ex.ID),
		}
	}
	b.WriteString(RenderTable(headers, rows))
	return RenderBox(sessionTitle(s), b.String())
}

func sessionTitle(s *domain.Session) string {
	return domain.CoalesceStr(s.Title, "Workout")
}

func FormatSessionList(sessions []*domain.Session) string {
	if len(sessions) == 0 {
		return Dim("No sessions logged.") + "\n"
	}
	headers := []string{"ID", "DATE", "TITLE", "DONE"}
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{
			TruncID(s.ID),
			ShortDate(s.Date),
			sessionTitle(s),
			fmt.Sprintf("%d/%d", s.CompletedCount(), len(s.Exercises)),
		}
	}
	return RenderBox("Sessions", RenderTable(headers, rows))
}
