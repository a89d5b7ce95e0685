package history

import (
	"context"
)

// HistoryService builds renderable views over the canonical per-day timeline.
type HistoryService interface {
	// GetTimeline returns the full deduplicated timeline for an employee.
	GetTimeline(ctx context.Context, employeeID string) (TimelineResponse, error)

	// GetMonthView returns the month window with stats, weekly slices,
	// the calendar grid and today/yesterday shortcuts.
	GetMonthView(ctx context.Context, req MonthViewRequest) (MonthViewResponse, error)

	// GetDay returns the canonical record for a single date.
	GetDay(ctx context.Context, employeeID string, date string) (DayRecord, error)
}
