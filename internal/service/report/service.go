package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/attendly/attendance-gateway-go/internal/domain/report"
	historysvc "github.com/attendly/attendance-gateway-go/internal/service/history"
)

type ReportServiceImpl struct {
	historyService history.HistoryService
	now            func() time.Time
}

func NewReportService(historyService history.HistoryService) report.ReportService {
	return &ReportServiceImpl{
		historyService: historyService,
		now:            time.Now,
	}
}

func (s *ReportServiceImpl) monthView(ctx context.Context, req report.MonthlyReportRequest) (history.MonthViewResponse, error) {
	if err := req.Validate(); err != nil {
		return history.MonthViewResponse{}, err
	}

	view, err := s.historyService.GetMonthView(ctx, history.MonthViewRequest{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
	})
	if err != nil {
		return history.MonthViewResponse{}, fmt.Errorf("failed to build month view: %w", err)
	}

	return view, nil
}

// reportRow flattens one canonical day record into printable columns.
type reportRow struct {
	Date    string
	Status  string
	TimeIn  string
	TimeOut string
	Hours   float64
	Remarks string
}

func buildRows(records []history.DayRecord) []reportRow {
	rows := make([]reportRow, 0, len(records))
	for _, rec := range records {
		var in, out string
		if rec.TimeIn != nil {
			in = *rec.TimeIn
		}
		if rec.TimeOut != nil {
			out = *rec.TimeOut
		}

		status := "Present"
		remarks := ""
		if rec.IsLeave {
			status = rec.LeaveType
			remarks = rec.LeaveReason
		}

		rows = append(rows, reportRow{
			Date:    rec.Date,
			Status:  status,
			TimeIn:  historysvc.FormatClock(in),
			TimeOut: historysvc.FormatClock(out),
			Hours:   historysvc.DurationHours(in, out),
			Remarks: remarks,
		})
	}
	return rows
}

// MonthlyPDF implements report.ReportService.
func (s *ReportServiceImpl) MonthlyPDF(ctx context.Context, req report.MonthlyReportRequest) ([]byte, error) {
	view, err := s.monthView(ctx, req)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Attendance Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", req.EmployeeName, req.EmployeeID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", view.MonthName, view.Year))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", s.now().Format("02 Jan 2006 15:04")))
	pdf.Ln(10)

	// Summary line
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf(
		"Days: %d   Present: %d   Leave: %d   Total hours: %.1f   Avg hours: %.1f",
		view.Stats.TotalDays,
		view.Stats.PresentDays,
		view.Stats.LeaveDays,
		view.Stats.TotalHours,
		view.Stats.AvgHours,
	))
	pdf.Ln(10)

	headers := []string{"Date", "Status", "In", "Out", "Hours", "Remarks"}
	widths := []float64{28, 26, 24, 24, 20, 68}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range buildRows(view.Records) {
		hours := "-"
		if row.Hours > 0 {
			hours = fmt.Sprintf("%.1f", row.Hours)
		}
		cells := []string{row.Date, row.Status, row.TimeIn, row.TimeOut, hours, row.Remarks}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// MonthlyXLSX implements report.ReportService.
func (s *ReportServiceImpl) MonthlyXLSX(ctx context.Context, req report.MonthlyReportRequest) ([]byte, error) {
	view, err := s.monthView(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Attendance Report")
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Employee: %s (%s)", req.EmployeeName, req.EmployeeID))
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Period: %s %d", view.MonthName, view.Year))

	headers := []string{"Date", "Status", "Time In", "Time Out", "Hours", "Remarks"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, h)
	}

	row := 6
	for _, r := range buildRows(view.Records) {
		values := []any{r.Date, r.Status, r.TimeIn, r.TimeOut, r.Hours, r.Remarks}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total days")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), view.Stats.TotalDays)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Present days")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), view.Stats.PresentDays)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Leave days")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), view.Stats.LeaveDays)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total hours")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), view.Stats.TotalHours)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Average hours")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), view.Stats.AvgHours)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}

	return buf.Bytes(), nil
}
