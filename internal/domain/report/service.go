package report

import "context"

// ReportService renders a month of attendance as a downloadable document.
type ReportService interface {
	MonthlyPDF(ctx context.Context, req MonthlyReportRequest) ([]byte, error)
	MonthlyXLSX(ctx context.Context, req MonthlyReportRequest) ([]byte, error)
}
