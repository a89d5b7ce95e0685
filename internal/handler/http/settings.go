package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-gateway-go/internal/domain/settings"
	"github.com/attendly/attendance-gateway-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetTheme(w http.ResponseWriter, r *http.Request)
	SetTheme(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// GetTheme implements SettingsHandler.
func (s *SettingsHandlerImpl) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.settingsService.GetTheme(r.Context())
	if err != nil {
		slog.Error("GetTheme service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, theme)
}

// SetTheme implements SettingsHandler.
func (s *SettingsHandlerImpl) SetTheme(w http.ResponseWriter, r *http.Request) {
	var theme settings.Theme

	if err := json.NewDecoder(r.Body).Decode(&theme); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := s.settingsService.SetTheme(r.Context(), theme); err != nil {
		slog.Error("SetTheme service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, theme)
}
