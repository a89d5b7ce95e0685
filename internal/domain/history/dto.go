package history

import (
	"time"

	"github.com/attendly/attendance-gateway-go/internal/pkg/validator"
)

// ========================================
// HISTORY DTOs
// ========================================

type MonthViewRequest struct {
	EmployeeID string
	Year       int
	Month      time.Month
}

func (r *MonthViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < time.January || r.Month > time.December {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayView is a display-ready projection of one DayRecord.
type DayView struct {
	Date        string  `json:"date"`
	IsLeave     bool    `json:"is_leave"`
	LeaveType   string  `json:"leave_type,omitempty"`
	LeaveReason string  `json:"leave_reason,omitempty"`
	TimeIn      string  `json:"time_in"`
	TimeOut     string  `json:"time_out"`
	Hours       float64 `json:"hours"`
	Duration    string  `json:"duration"`
}

// WeekView is a fixed-size slice of the month's records for the weekly bar
// chart. Slices are positional, not calendar-aligned: week N covers records
// [7N:7N+7] of the month's date-ordered sequence.
type WeekView struct {
	Index int       `json:"index"`
	Range string    `json:"range"`
	Days  []DayView `json:"days"`
}

// CalendarCell is one cell of the month grid. Leading cells that pad the
// grid up to the weekday of the 1st have Day == 0 and no date.
type CalendarCell struct {
	Date        string     `json:"date,omitempty"`
	Day         int        `json:"day,omitempty"`
	Record      *DayRecord `json:"record,omitempty"`
	IsToday     bool       `json:"is_today,omitempty"`
	IsYesterday bool       `json:"is_yesterday,omitempty"`
}

type MonthViewResponse struct {
	EmployeeID string         `json:"employee_id"`
	Year       int            `json:"year"`
	Month      int            `json:"month"`
	MonthName  string         `json:"month_name"`
	Records    []DayRecord    `json:"records"`
	Stats      DerivedStats   `json:"stats"`
	Weeks      []WeekView     `json:"weeks"`
	Calendar   []CalendarCell `json:"calendar"`
	Today      *DayRecord     `json:"today,omitempty"`
	Yesterday  *DayRecord     `json:"yesterday,omitempty"`
}

type TimelineResponse struct {
	EmployeeID string       `json:"employee_id"`
	Records    []DayRecord  `json:"records"`
	Stats      DerivedStats `json:"stats"`
}
