package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/attendly/attendance-gateway-go/internal/domain/auth"
	"github.com/attendly/attendance-gateway-go/internal/handler/http/response"
	"github.com/attendly/attendance-gateway-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginLocal(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RegisterDevice(w http.ResponseWriter, r *http.Request)
	ListRegistered(w http.ResponseWriter, r *http.Request)
	RemoveRegistered(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loginResp, err := a.authService.LoginPIN(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee logged in", "employee_id", loginResp.Employee.ID)
	response.Success(w, loginResp)
}

// LoginLocal implements AuthHandler.
func (a *AuthHandlerImpl) LoginLocal(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginLocal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loginResp, err := a.authService.LoginLocal(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginLocal service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee logged in locally", "employee_id", loginResp.Employee.ID)
	response.Success(w, loginResp)
}

// Logout implements AuthHandler. The access token is revoked; it keeps
// failing authentication until it would have expired anyway.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	a.jwtService.RevokeToken(token)

	slog.Info("Employee logged out")
	response.SuccessWithMessage(w, "Logged out", nil)
}

// RegisterDevice implements AuthHandler.
func (a *AuthHandlerImpl) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterDeviceRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterDevice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	registered, err := a.authService.RegisterDevice(r.Context(), registerReq)
	if err != nil {
		slog.Error("RegisterDevice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee registered on device", "employee_id", registered.ID)
	response.Created(w, "Employee registered on this device", registered)
}

// ListRegistered implements AuthHandler.
func (a *AuthHandlerImpl) ListRegistered(w http.ResponseWriter, r *http.Request) {
	users, err := a.authService.ListRegistered(r.Context())
	if err != nil {
		slog.Error("ListRegistered service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// RemoveRegistered implements AuthHandler.
func (a *AuthHandlerImpl) RemoveRegistered(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.authService.RemoveRegistered(r.Context(), id); err != nil {
		slog.Error("RemoveRegistered service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Registered user removed", "employee_id", id)
	response.SuccessWithMessage(w, "Registered user removed", nil)
}
