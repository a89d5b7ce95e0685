package history

import (
	"testing"
	"time"

	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationHours(t *testing.T) {
	cases := []struct {
		name    string
		timeIn  string
		timeOut string
		want    float64
	}{
		{"standard day", "09:00", "17:30", 8.5},
		{"single digit hour", "9:00", "13:00", 4},
		{"twelve hour form", "09:00 AM", "05:30 PM", 8.5},
		{"mixed forms", "09:00", "05:00 PM", 8},
		{"midnight rollover", "10:00 PM", "02:00 AM", 4},
		{"rollover 24h form", "22:00", "02:00", 4},
		{"ninety minutes", "08:00", "09:30", 1.5},
		{"zero span", "09:00", "09:00", 0},
		{"missing in", "", "17:00", 0},
		{"missing out", "09:00", "", 0},
		{"absent marker", "—", "17:00", 0},
		{"garbage in", "morning", "17:00", 0},
		{"garbage out", "09:00", "late", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DurationHours(c.timeIn, c.timeOut)
			assert.InDelta(t, c.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	records := []history.DayRecord{
		att("2024-01-15", "09:00", "17:00"),
		att("2024-02-01", "09:00", "17:00"),
		att("2024-01-03", "09:00", "17:00"),
		lv("2024-01-20", "Sick"),
		{Date: "not-a-date"},
	}

	got := MonthWindow(records, 2024, time.January)
	require.Len(t, got, 3)

	// Date-ordered regardless of fetch order.
	assert.Equal(t, "2024-01-03", got[0].Date)
	assert.Equal(t, "2024-01-15", got[1].Date)
	assert.Equal(t, "2024-01-20", got[2].Date)
}

func TestWeekSlice(t *testing.T) {
	window := make([]history.DayRecord, 0, 10)
	for day := 1; day <= 10; day++ {
		window = append(window, att(time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "09:00", "17:00"))
	}

	assert.Equal(t, 2, WeekCount(window))

	first := WeekSlice(window, 0)
	require.Len(t, first, 7)
	assert.Equal(t, "2024-03-01", first[0].Date)
	assert.Equal(t, "2024-03-07", first[6].Date)

	second := WeekSlice(window, 1)
	require.Len(t, second, 3)
	assert.Equal(t, "2024-03-08", second[0].Date)

	assert.Nil(t, WeekSlice(window, 2))
	assert.Nil(t, WeekSlice(window, -1))
	assert.Equal(t, 0, WeekCount(nil))
}

func TestWeekRange(t *testing.T) {
	week := []history.DayRecord{
		att("2025-01-06", "09:00", "17:00"),
		att("2025-01-12", "09:00", "17:00"),
	}
	assert.Equal(t, "Jan 06 - Jan 12, 2025", WeekRange(week))
	assert.Equal(t, "", WeekRange(nil))
}

func TestStats(t *testing.T) {
	in, out := "09:00", "13:00"
	records := []history.DayRecord{
		{Date: "2024-01-01", IsLeave: true, LeaveType: history.LeaveFullDay},
		{Date: "2024-01-02", TimeIn: &in, TimeOut: &out},
	}

	got := Stats(records)
	assert.Equal(t, 2, got.TotalDays)
	assert.Equal(t, 1, got.PresentDays)
	assert.Equal(t, 1, got.LeaveDays)
	assert.InDelta(t, 4, got.TotalHours, 1e-9)
	assert.InDelta(t, 2.0, got.AvgHours, 1e-9)
}

func TestStats_TotalDaysMatchesInput(t *testing.T) {
	records := Dedupe([]history.DayRecord{
		att("2024-01-01", "09:00", "17:00"),
		lv("2024-01-02", "Sick"),
		att("2024-01-03", "", ""),
	})
	assert.Equal(t, len(records), Stats(records).TotalDays)
}

func TestStats_OpenPunchIsNotPresent(t *testing.T) {
	in := "09:00"
	records := []history.DayRecord{{Date: "2024-01-01", TimeIn: &in}}

	got := Stats(records)
	assert.Equal(t, 1, got.TotalDays)
	assert.Equal(t, 0, got.PresentDays)
	assert.InDelta(t, 0, got.TotalHours, 1e-9)
}

func TestStats_Empty(t *testing.T) {
	got := Stats(nil)
	assert.Equal(t, history.DerivedStats{}, got)
}

func TestStats_AvgRoundsToOneDecimal(t *testing.T) {
	records := []history.DayRecord{
		att("2024-01-01", "09:00", "17:00"), // 8h
		att("2024-01-02", "09:00", "16:20"), // 7h20m
		att("2024-01-03", "09:00", "17:00"), // 8h
	}
	got := Stats(records)
	// (8 + 7.333... + 8) / 3 = 7.777... -> 7.8
	assert.InDelta(t, 7.8, got.AvgHours, 1e-9)
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"09:00", "9:00 AM"},
		{"17:30", "5:30 PM"},
		{"9:05 AM", "9:05 AM"},
		{"", "—"},
		{"—", "—"},
		{"nonsense", "—"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatClock(c.input), "FormatClock(%q)", c.input)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "8h 30m", FormatDuration("09:00", "17:30"))
	assert.Equal(t, "4h 0m", FormatDuration("10:00 PM", "02:00 AM"))
	assert.Equal(t, "—", FormatDuration("", "17:00"))
	assert.Equal(t, "—", FormatDuration("09:00", "09:00"))
}

func TestFilterWindow(t *testing.T) {
	records := []history.DayRecord{
		att("2024-01-01", "09:00", "17:00"),
		lv("2024-01-02", "Sick"),
	}
	leaves := FilterWindow(records, func(r history.DayRecord) bool { return r.IsLeave })
	require.Len(t, leaves, 1)
	assert.Equal(t, "2024-01-02", leaves[0].Date)
}
