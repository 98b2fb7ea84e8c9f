package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/consistency"
)

// FormatHistory renders synthesized days oldest first.
func FormatHistory(entries []consistency.DayEntry, today time.Time) string {
	if len(entries) == 0 {
		return Dim("Nothing planned or logged yet.") + "\n"
	}
	headers := []string{"DATE", "WHEN", "STATUS", "TITLE", "DONE"}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		done := 0
		if e.IsLogged() {
			done = e.Session.CompletedCount()
		}
		rows[i] = []string{
			ShortDate(e.Date),
			Dim(RelativeDay(e.Date, today)),
			EntryPill(e),
			e.Title,
			fmt.Sprintf("%d/%d", done, len(e.Exercises)),
		}
	}
	return RenderBox("History", RenderTable(headers, rows))
}
