package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/attendly/attendance-gateway-go/internal/domain/report"
)

type fakeHistoryService struct {
	view history.MonthViewResponse
	err  error
}

func (f *fakeHistoryService) GetTimeline(ctx context.Context, employeeID string) (history.TimelineResponse, error) {
	return history.TimelineResponse{}, nil
}

func (f *fakeHistoryService) GetMonthView(ctx context.Context, req history.MonthViewRequest) (history.MonthViewResponse, error) {
	return f.view, f.err
}

func (f *fakeHistoryService) GetDay(ctx context.Context, employeeID string, date string) (history.DayRecord, error) {
	return history.DayRecord{}, nil
}

func strptr(s string) *string { return &s }

func marchView() history.MonthViewResponse {
	return history.MonthViewResponse{
		EmployeeID: "42",
		Year:       2024,
		Month:      3,
		MonthName:  "March",
		Records: []history.DayRecord{
			{Date: "2024-03-01", TimeIn: strptr("09:00"), TimeOut: strptr("17:30")},
			{Date: "2024-03-04", IsLeave: true, LeaveType: "Full Day", LeaveReason: "Sick"},
		},
		Stats: history.DerivedStats{
			TotalDays:   2,
			PresentDays: 1,
			LeaveDays:   1,
			TotalHours:  8.5,
			AvgHours:    8.5,
		},
	}
}

func testRequest() report.MonthlyReportRequest {
	return report.MonthlyReportRequest{
		EmployeeID:   "42",
		EmployeeName: "Asha",
		Year:         2024,
		Month:        time.March,
	}
}

func TestMonthlyPDF(t *testing.T) {
	svc := NewReportService(&fakeHistoryService{view: marchView()})

	data, err := svc.MonthlyPDF(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestMonthlyXLSX(t *testing.T) {
	svc := NewReportService(&fakeHistoryService{view: marchView()})

	data, err := svc.MonthlyXLSX(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// xlsx is a zip container
	assert.Equal(t, "PK", string(data[:2]))
}

func TestMonthlyReportValidation(t *testing.T) {
	svc := NewReportService(&fakeHistoryService{view: marchView()})

	_, err := svc.MonthlyPDF(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "",
		Year:       2024,
		Month:      time.March,
	})
	assert.Error(t, err)
}

func TestBuildRows(t *testing.T) {
	rows := buildRows(marchView().Records)
	require.Len(t, rows, 2)

	assert.Equal(t, "Present", rows[0].Status)
	assert.Equal(t, "9:00 AM", rows[0].TimeIn)
	assert.Equal(t, 8.5, rows[0].Hours)

	assert.Equal(t, "Full Day", rows[1].Status)
	assert.Equal(t, "Sick", rows[1].Remarks)
	assert.Equal(t, float64(0), rows[1].Hours)
}
