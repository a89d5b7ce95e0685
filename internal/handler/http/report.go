package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/attendance-gateway-go/internal/domain/report"
	"github.com/attendly/attendance-gateway-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyPDF(w http.ResponseWriter, r *http.Request)
	MonthlyXLSX(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	now           func() time.Time
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		now:           time.Now,
	}
}

func (h *ReportHandlerImpl) parseRequest(r *http.Request) (report.MonthlyReportRequest, error) {
	now := h.now()
	req := report.MonthlyReportRequest{
		EmployeeID:   chi.URLParam(r, "employeeID"),
		EmployeeName: r.URL.Query().Get("name"),
		Year:         now.Year(),
		Month:        now.Month(),
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return report.MonthlyReportRequest{}, fmt.Errorf("year must be a number")
		}
		req.Year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return report.MonthlyReportRequest{}, fmt.Errorf("month must be a number")
		}
		req.Month = time.Month(parsed)
	}

	return req, nil
}

func reportFilename(req report.MonthlyReportRequest, ext string) string {
	return fmt.Sprintf("attendance-%s-%04d-%02d.%s", req.EmployeeID, req.Year, req.Month, ext)
}

// MonthlyPDF implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	data, err := h.reportService.MonthlyPDF(r.Context(), req)
	if err != nil {
		slog.Error("MonthlyPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+reportFilename(req, "pdf"))
	w.Write(data)
}

// MonthlyXLSX implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyXLSX(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	data, err := h.reportService.MonthlyXLSX(r.Context(), req)
	if err != nil {
		slog.Error("MonthlyXLSX service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+reportFilename(req, "xlsx"))
	w.Write(data)
}
