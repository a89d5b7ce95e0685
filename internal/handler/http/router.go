package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/attendly/attendance-gateway-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-gateway-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth     AuthHandler
	Punch    PunchHandler
	History  HistoryHandler
	Leave    LeaveHandler
	Profile  ProfileHandler
	Note     NoteHandler
	Settings SettingsHandler
	Report   ReportHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/login/local", h.Auth.LoginLocal)
			r.Post("/register-device", h.Auth.RegisterDevice)
			r.Get("/registered", h.Auth.ListRegistered)
			r.Delete("/registered/{id}", h.Auth.RemoveRegistered)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/punch", h.Punch.Punch)

			r.Route("/history/{employeeID}", func(r chi.Router) {
				r.Get("/", h.History.GetTimeline)
				r.Get("/month", h.History.GetMonthView)
				r.Get("/day/{date}", h.History.GetDay)
			})

			r.Post("/leaves", h.Leave.Apply)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/{empCode}", h.Profile.Get)
			})

			r.Route("/employees/{employeeID}/photo", func(r chi.Router) {
				r.Get("/", h.Profile.GetPhoto)
				r.Post("/", h.Profile.UploadPhoto)
				r.Delete("/", h.Profile.DeletePhoto)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", h.Note.List)
				r.Post("/", h.Note.Put)
				r.Get("/stats", h.Note.GetStats)
				r.Get("/{date}", h.Note.Get)
				r.Delete("/{date}", h.Note.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/theme", h.Settings.GetTheme)
				r.Put("/theme", h.Settings.SetTheme)
			})

			r.Route("/reports/{employeeID}", func(r chi.Router) {
				r.Get("/monthly.pdf", h.Report.MonthlyPDF)
				r.Get("/monthly.xlsx", h.Report.MonthlyXLSX)
			})
		})
	})
	return r
}
