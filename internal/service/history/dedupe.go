package history

import (
	"github.com/attendly/attendance-gateway-go/internal/domain/history"
)

// Dedupe collapses multiple records for the same calendar date into one,
// preserving first-occurrence order. When an attendance record and a leave
// record share a date the attendance record wins, whichever arrived first:
// the employee actually showed up despite the approved leave entry. Records
// of the same kind keep the first one; fields are never merged.
func Dedupe(records []history.DayRecord) []history.DayRecord {
	out := make([]history.DayRecord, 0, len(records))
	seen := make(map[string]int, len(records))

	for _, rec := range records {
		idx, ok := seen[rec.Date]
		if !ok {
			seen[rec.Date] = len(out)
			out = append(out, rec)
			continue
		}
		if out[idx].IsLeave && !rec.IsLeave {
			// Attendance supersedes leave in place.
			out[idx] = rec
		}
	}
	return out
}
