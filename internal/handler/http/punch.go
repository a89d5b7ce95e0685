package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-gateway-go/internal/domain/punch"
	"github.com/attendly/attendance-gateway-go/internal/handler/http/response"
)

type PunchHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Punch implements PunchHandler.
func (p *PunchHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var punchReq punch.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punchResp, err := p.punchService.Punch(r.Context(), punchReq)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch recorded", "type", punchResp.Type)
	response.Success(w, punchResp)
}
