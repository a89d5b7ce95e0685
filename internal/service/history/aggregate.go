package history

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/attendly/attendance-gateway-go/internal/domain/history"
)

// AbsentMarker is the placeholder the backend (and the UI) use for a
// missing punch time.
const AbsentMarker = "—"

const dateLayout = "2006-01-02"

// parseClockMinutes parses a time-of-day string in either 24-hour "H:MM" or
// 12-hour "h:mm AM/PM" form into minutes since midnight.
func parseClockMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == AbsentMarker {
		return 0, false
	}

	upper := strings.ToUpper(s)
	var t time.Time
	var err error
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		t, err = time.Parse("3:04 PM", upper)
	} else {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// DurationHours returns the fractional hours between two punch times.
// Any missing or unparsable input yields 0; a shift crossing midnight
// (end before start) gains 24 hours before differencing. Never negative.
func DurationHours(timeIn, timeOut string) float64 {
	start, ok := parseClockMinutes(timeIn)
	if !ok {
		return 0
	}
	end, ok := parseClockMinutes(timeOut)
	if !ok {
		return 0
	}

	minutes := end - start
	if minutes < 0 {
		minutes += 24 * 60
	}
	return float64(minutes) / 60
}

// FilterWindow returns the records matching pred, in input order.
func FilterWindow(records []history.DayRecord, pred func(history.DayRecord) bool) []history.DayRecord {
	out := make([]history.DayRecord, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// MonthWindow returns the date-ordered records falling in the given month.
// Records whose date does not parse are excluded.
func MonthWindow(records []history.DayRecord, year int, month time.Month) []history.DayRecord {
	window := FilterWindow(records, func(rec history.DayRecord) bool {
		d, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			return false
		}
		return d.Year() == year && d.Month() == month
	})
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].Date < window[j].Date
	})
	return window
}

// WeekCount returns how many 7-record slices the window splits into.
func WeekCount(window []history.DayRecord) int {
	return (len(window) + 6) / 7
}

// WeekSlice returns slice n of the window: records [7n : 7n+7]. The slices
// are positional over the date-ordered month window, not aligned to calendar
// week boundaries.
func WeekSlice(window []history.DayRecord, n int) []history.DayRecord {
	start := n * 7
	if n < 0 || start >= len(window) {
		return nil
	}
	end := start + 7
	if end > len(window) {
		end = len(window)
	}
	return window[start:end]
}

// WeekRange returns a display label like "Jan 06 - Jan 12, 2025" for a
// week slice, or an empty string when the slice is empty.
func WeekRange(week []history.DayRecord) string {
	if len(week) == 0 {
		return ""
	}
	first, err := time.Parse(dateLayout, week[0].Date)
	if err != nil {
		return ""
	}
	last, err := time.Parse(dateLayout, week[len(week)-1].Date)
	if err != nil {
		return ""
	}
	return first.Format("Jan 02") + " - " + last.Format("Jan 02, 2006")
}

// Stats computes the derived figures over a window of records. Present days
// require both punch times and no leave marker; hours sum per-record
// durations; the average is rounded to one decimal for display.
func Stats(records []history.DayRecord) history.DerivedStats {
	stats := history.DerivedStats{TotalDays: len(records)}
	for _, rec := range records {
		if rec.IsLeave {
			stats.LeaveDays++
		}
		if !rec.IsLeave && rec.TimeIn != nil && rec.TimeOut != nil {
			stats.PresentDays++
		}
		stats.TotalHours += DurationHours(deref(rec.TimeIn), deref(rec.TimeOut))
	}
	if stats.TotalDays > 0 {
		stats.AvgHours = math.Round(stats.TotalHours/float64(stats.TotalDays)*10) / 10
	}
	return stats
}

// FormatClock renders a punch time in the 12-hour display form, or the
// absent marker when missing or unparsable.
func FormatClock(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == AbsentMarker {
		return AbsentMarker
	}
	upper := strings.ToUpper(s)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return s
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return AbsentMarker
	}
	return t.Format("3:04 PM")
}

// FormatDuration renders the worked span as "8h 30m", or the absent marker
// when no duration can be computed.
func FormatDuration(timeIn, timeOut string) string {
	hours := DurationHours(timeIn, timeOut)
	if hours == 0 {
		return AbsentMarker
	}
	whole := int(hours)
	minutes := int(math.Round((hours - float64(whole)) * 60))
	return fmt.Sprintf("%dh %dm", whole, minutes)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
