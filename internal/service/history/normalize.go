package history

import (
	"github.com/attendly/attendance-gateway-go/internal/domain/history"
)

// Normalize reconciles heterogeneous backend record shapes into canonical
// per-day records. It is total: a malformed record degrades to the safest
// classification or is dropped, never aborting the rest of the batch.
func Normalize(raw []history.RawRecord) []history.DayRecord {
	out := make([]history.DayRecord, 0, len(raw))
	for _, r := range raw {
		date := r.Date
		if date == "" {
			// Leave filings carry from_date/to_date instead of date.
			// Multi-day spans collapse to their start date; the backend
			// has never been observed expanding them per day.
			date = r.FromDate
		}
		if date == "" {
			continue
		}

		rec := history.DayRecord{
			Date:    date,
			IsLeave: classifyLeave(r),
		}

		if rec.IsLeave {
			rec.LeaveReason = firstNonEmpty(r.Reason, r.LeaveReason, r.Remarks, history.DefaultLeaveReason)
			rec.LeaveType = resolveLeaveType(r)
			// Leave records never carry times, even when the source
			// record erroneously included them.
		} else {
			rec.TimeIn = optional(r.TimeIn)
			rec.TimeOut = optional(r.TimeOut)
		}

		out = append(out, rec)
	}
	return out
}

// classifyLeave decides whether a raw record represents an absence rather
// than worked attendance. Any one marker is enough; the backend is not
// consistent about which one it sets.
func classifyLeave(r history.RawRecord) bool {
	switch {
	case r.Absent:
		return true
	case r.Status == "absent" || r.Status == "leave":
		return true
	case r.Type == "leave":
		return true
	case r.Reason != "" && r.TimeIn == "" && r.TimeOut == "":
		return true
	case r.FromDate != "" && r.ToDate != "":
		return true
	case r.IsLeave || r.Leave:
		return true
	}
	return false
}

func resolveLeaveType(r history.RawRecord) string {
	switch {
	case r.LeaveType != "":
		return r.LeaveType
	case r.HalfDay:
		return history.LeaveHalfDay
	case r.ShortLeave:
		return history.LeaveShortLeave
	}
	return history.LeaveFullDay
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
