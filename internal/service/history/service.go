package history

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/attendly/attendance-gateway-go/internal/pkg/validator"
)

type HistoryServiceImpl struct {
	provider history.Provider
	now      func() time.Time
}

func NewHistoryService(provider history.Provider) history.HistoryService {
	return &HistoryServiceImpl{
		provider: provider,
		now:      time.Now,
	}
}

// canonical fetches the raw history and runs it through the pipeline:
// attendance and leave arrays are concatenated, normalized, deduplicated.
func (s *HistoryServiceImpl) canonical(ctx context.Context, employeeID string) ([]history.DayRecord, error) {
	payload, err := s.provider.FetchHistory(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	raw := make([]history.RawRecord, 0, len(payload.Attendance)+len(payload.Leaves))
	raw = append(raw, payload.Attendance...)
	raw = append(raw, payload.Leaves...)

	return Dedupe(Normalize(raw)), nil
}

// GetTimeline implements history.HistoryService.
func (s *HistoryServiceImpl) GetTimeline(ctx context.Context, employeeID string) (history.TimelineResponse, error) {
	if validator.IsEmpty(employeeID) {
		return history.TimelineResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	records, err := s.canonical(ctx, employeeID)
	if err != nil {
		return history.TimelineResponse{}, err
	}

	return history.TimelineResponse{
		EmployeeID: employeeID,
		Records:    records,
		Stats:      Stats(records),
	}, nil
}

// GetMonthView implements history.HistoryService.
func (s *HistoryServiceImpl) GetMonthView(ctx context.Context, req history.MonthViewRequest) (history.MonthViewResponse, error) {
	if err := req.Validate(); err != nil {
		return history.MonthViewResponse{}, err
	}

	records, err := s.canonical(ctx, req.EmployeeID)
	if err != nil {
		return history.MonthViewResponse{}, err
	}

	window := MonthWindow(records, req.Year, req.Month)

	weeks := make([]history.WeekView, 0, WeekCount(window))
	for n := 0; n < WeekCount(window); n++ {
		slice := WeekSlice(window, n)
		days := make([]history.DayView, 0, len(slice))
		for _, rec := range slice {
			days = append(days, mapDayView(rec))
		}
		weeks = append(weeks, history.WeekView{
			Index: n,
			Range: WeekRange(slice),
			Days:  days,
		})
	}

	byDate := make(map[string]history.DayRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	now := s.now()
	todayStr := now.Format(dateLayout)
	yesterdayStr := now.AddDate(0, 0, -1).Format(dateLayout)

	return history.MonthViewResponse{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      int(req.Month),
		MonthName:  req.Month.String(),
		Records:    window,
		Stats:      Stats(window),
		Weeks:      weeks,
		Calendar:   buildCalendar(byDate, req.Year, req.Month, todayStr, yesterdayStr),
		Today:      lookup(byDate, todayStr),
		Yesterday:  lookup(byDate, yesterdayStr),
	}, nil
}

// GetDay implements history.HistoryService.
func (s *HistoryServiceImpl) GetDay(ctx context.Context, employeeID string, date string) (history.DayRecord, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if len(errs) > 0 {
		return history.DayRecord{}, errs
	}

	records, err := s.canonical(ctx, employeeID)
	if err != nil {
		return history.DayRecord{}, err
	}

	for _, rec := range records {
		if rec.Date == date {
			return rec, nil
		}
	}
	return history.DayRecord{}, history.ErrDayNotFound
}

// buildCalendar lays out the month grid: leading blank cells up to the
// weekday of the 1st, then one cell per day with its canonical record.
func buildCalendar(byDate map[string]history.DayRecord, year int, month time.Month, todayStr, yesterdayStr string) []history.CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]history.CalendarCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, history.CalendarCell{})
	}

	for day := 1; day <= daysInMonth; day++ {
		dateStr := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
		cells = append(cells, history.CalendarCell{
			Date:        dateStr,
			Day:         day,
			Record:      lookup(byDate, dateStr),
			IsToday:     dateStr == todayStr,
			IsYesterday: dateStr == yesterdayStr,
		})
	}
	return cells
}

func mapDayView(rec history.DayRecord) history.DayView {
	return history.DayView{
		Date:        rec.Date,
		IsLeave:     rec.IsLeave,
		LeaveType:   rec.LeaveType,
		LeaveReason: rec.LeaveReason,
		TimeIn:      FormatClock(deref(rec.TimeIn)),
		TimeOut:     FormatClock(deref(rec.TimeOut)),
		Hours:       DurationHours(deref(rec.TimeIn), deref(rec.TimeOut)),
		Duration:    FormatDuration(deref(rec.TimeIn), deref(rec.TimeOut)),
	}
}

func lookup(byDate map[string]history.DayRecord, date string) *history.DayRecord {
	rec, ok := byDate[date]
	if !ok {
		return nil
	}
	return &rec
}
