package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/attendly/attendance-gateway-go/internal/handler/http/response"
)

type HistoryHandler interface {
	GetTimeline(w http.ResponseWriter, r *http.Request)
	GetMonthView(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
}

type HistoryHandlerImpl struct {
	historyService history.HistoryService
	now            func() time.Time
}

func NewHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &HistoryHandlerImpl{
		historyService: historyService,
		now:            time.Now,
	}
}

// GetTimeline implements HistoryHandler.
func (h *HistoryHandlerImpl) GetTimeline(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	timeline, err := h.historyService.GetTimeline(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetTimeline service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timeline)
}

// GetMonthView implements HistoryHandler. Year and month default to the
// current month when the query parameters are absent.
func (h *HistoryHandlerImpl) GetMonthView(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	now := h.now()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		month = time.Month(parsed)
	}

	view, err := h.historyService.GetMonthView(r.Context(), history.MonthViewRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		slog.Error("GetMonthView service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// GetDay implements HistoryHandler.
func (h *HistoryHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	day, err := h.historyService.GetDay(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("GetDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}
