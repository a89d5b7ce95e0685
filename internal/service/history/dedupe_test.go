package history

import (
	"testing"

	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func att(date, in, out string) history.DayRecord {
	return history.DayRecord{Date: date, TimeIn: &in, TimeOut: &out}
}

func lv(date, reason string) history.DayRecord {
	return history.DayRecord{Date: date, IsLeave: true, LeaveType: history.LeaveFullDay, LeaveReason: reason}
}

func TestDedupe_OneRecordPerDate(t *testing.T) {
	input := []history.DayRecord{
		att("2024-01-01", "09:00", "17:00"),
		lv("2024-01-01", "Sick"),
		att("2024-01-02", "09:00", "17:00"),
		att("2024-01-02", "10:00", "18:00"),
		lv("2024-01-03", "Trip"),
	}

	got := Dedupe(input)
	require.Len(t, got, 3)

	seen := make(map[string]bool)
	for _, rec := range got {
		assert.False(t, seen[rec.Date], "duplicate date %s", rec.Date)
		seen[rec.Date] = true
	}
}

func TestDedupe_AttendancePrecedence(t *testing.T) {
	attendance := att("2024-01-05", "09:00", "17:00")
	leave := lv("2024-01-05", "Sick")

	// Attendance wins regardless of arrival order.
	for _, input := range [][]history.DayRecord{
		{attendance, leave},
		{leave, attendance},
	} {
		got := Dedupe(input)
		require.Len(t, got, 1)
		assert.False(t, got[0].IsLeave)
		require.NotNil(t, got[0].TimeIn)
		assert.Equal(t, "09:00", *got[0].TimeIn)
	}
}

func TestDedupe_SameKindFirstWins(t *testing.T) {
	got := Dedupe([]history.DayRecord{
		att("2024-01-05", "09:00", "17:00"),
		att("2024-01-05", "10:00", "18:00"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "09:00", *got[0].TimeIn)

	got = Dedupe([]history.DayRecord{
		lv("2024-01-06", "Sick"),
		lv("2024-01-06", "Trip"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Sick", got[0].LeaveReason)
}

func TestDedupe_PreservesFirstOccurrenceOrder(t *testing.T) {
	got := Dedupe([]history.DayRecord{
		att("2024-01-03", "09:00", "17:00"),
		lv("2024-01-01", "Sick"),
		att("2024-01-02", "09:00", "17:00"),
		att("2024-01-01", "08:00", "16:00"),
	})
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-03", got[0].Date)
	assert.Equal(t, "2024-01-01", got[1].Date)
	assert.Equal(t, "2024-01-02", got[2].Date)
	// The leave at position 1 was superseded in place by the attendance.
	assert.False(t, got[1].IsLeave)
}

func TestDedupe_Idempotent(t *testing.T) {
	input := []history.DayRecord{
		att("2024-01-01", "09:00", "17:00"),
		lv("2024-01-01", "Sick"),
		lv("2024-01-02", "Trip"),
		att("2024-01-02", "09:30", "17:30"),
		att("2024-01-03", "09:00", "17:00"),
	}

	once := Dedupe(input)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]history.DayRecord{}))
}

func TestNormalizeDedupe_AttendanceOverridesLeaveFiling(t *testing.T) {
	raw := []history.RawRecord{
		{Date: "2024-01-05", TimeIn: "09:00", TimeOut: "17:00"},
		{Date: "2024-01-05", Absent: true, Reason: "Sick"},
	}

	got := Dedupe(Normalize(raw))
	require.Len(t, got, 1)

	assert.Equal(t, "2024-01-05", got[0].Date)
	assert.False(t, got[0].IsLeave)
	require.NotNil(t, got[0].TimeIn)
	require.NotNil(t, got[0].TimeOut)
	assert.Equal(t, "09:00", *got[0].TimeIn)
	assert.Equal(t, "17:00", *got[0].TimeOut)
}
