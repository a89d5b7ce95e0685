package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-gateway-go/internal/config"
	appHTTP "github.com/attendly/attendance-gateway-go/internal/handler/http"
	"github.com/attendly/attendance-gateway-go/internal/pkg/database"
	"github.com/attendly/attendance-gateway-go/internal/pkg/jwt"
	"github.com/attendly/attendance-gateway-go/internal/pkg/upstream"
	"github.com/attendly/attendance-gateway-go/internal/repository/sqlite"
	authService "github.com/attendly/attendance-gateway-go/internal/service/auth"
	historyService "github.com/attendly/attendance-gateway-go/internal/service/history"
	leaveService "github.com/attendly/attendance-gateway-go/internal/service/leave"
	noteService "github.com/attendly/attendance-gateway-go/internal/service/note"
	profileService "github.com/attendly/attendance-gateway-go/internal/service/profile"
	punchService "github.com/attendly/attendance-gateway-go/internal/service/punch"
	reportService "github.com/attendly/attendance-gateway-go/internal/service/report"
	settingsService "github.com/attendly/attendance-gateway-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewSQLiteDB(cfg.Store.Path)
	if err != nil {
		fmt.Println("Error opening local store:", err)
		return
	}
	defer db.Close()

	backend := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	noteRepo := sqlite.NewNoteRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	registeredUserRepo := sqlite.NewRegisteredUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	histories := historyService.NewHistoryService(backend)

	handlers := appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authService.NewAuthService(backend, registeredUserRepo, JWTService), JWTService),
		Punch:    appHTTP.NewPunchHandler(punchService.NewPunchService(backend)),
		History:  appHTTP.NewHistoryHandler(histories),
		Leave:    appHTTP.NewLeaveHandler(leaveService.NewLeaveService(backend)),
		Profile:  appHTTP.NewProfileHandler(profileService.NewProfileService(backend)),
		Note:     appHTTP.NewNoteHandler(noteService.NewNoteService(noteRepo)),
		Settings: appHTTP.NewSettingsHandler(settingsService.NewSettingsService(settingsRepo)),
		Report:   appHTTP.NewReportHandler(reportService.NewReportService(histories)),
	}

	router := appHTTP.NewRouter(JWTService, cfg.App.Env, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Attendance gateway listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
