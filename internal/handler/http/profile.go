package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/attendance-gateway-go/internal/domain/profile"
	"github.com/attendly/attendance-gateway-go/internal/handler/http/response"
)

// maxPhotoSize bounds the multipart upload body.
const maxPhotoSize = 5 << 20

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	GetPhoto(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	DeletePhoto(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{profileService: profileService}
}

// Get implements ProfileHandler.
func (p *ProfileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	empCode := chi.URLParam(r, "empCode")

	prof, err := p.profileService.Get(r.Context(), empCode)
	if err != nil {
		slog.Error("Get profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, prof)
}

// GetPhoto implements ProfileHandler.
func (p *ProfileHandlerImpl) GetPhoto(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	url, err := p.profileService.GetPhotoURL(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetPhoto service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"photo_url": url})
}

// UploadPhoto implements ProfileHandler.
func (p *ProfileHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		response.BadRequest(w, "Invalid multipart body", nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "photo file is required", nil)
		return
	}
	defer file.Close()

	url, err := p.profileService.UploadPhoto(r.Context(), employeeID, file, header.Filename)
	if err != nil {
		slog.Error("UploadPhoto service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile photo updated", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Photo updated", map[string]string{"photo_url": url})
}

// DeletePhoto implements ProfileHandler.
func (p *ProfileHandlerImpl) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := p.profileService.DeletePhoto(r.Context(), employeeID); err != nil {
		slog.Error("DeletePhoto service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile photo removed", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Photo removed", nil)
}
