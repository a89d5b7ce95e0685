package profile

import (
	"context"
	"io"

	"github.com/attendly/attendance-gateway-go/internal/domain/profile"
)

// Backend is the subset of the upstream client the profile service needs.
type Backend interface {
	Profile(ctx context.Context, empCode string) (profile.Profile, error)
	PhotoURL(employeeID string) string
	HasPhoto(ctx context.Context, employeeID string) (bool, error)
	UploadPhoto(ctx context.Context, employeeID string, file io.Reader, filename string) error
	DeletePhoto(ctx context.Context, employeeID string) error
}

type ProfileServiceImpl struct {
	backend Backend
}

func NewProfileService(backend Backend) profile.ProfileService {
	return &ProfileServiceImpl{backend: backend}
}

// Get implements profile.ProfileService.
func (s *ProfileServiceImpl) Get(ctx context.Context, empCode string) (profile.Profile, error) {
	p, err := s.backend.Profile(ctx, empCode)
	if err != nil {
		return profile.Profile{}, err
	}

	if p.PhotoURL == "" && p.ID != "" {
		if ok, err := s.backend.HasPhoto(ctx, p.ID); err == nil && ok {
			p.PhotoURL = s.backend.PhotoURL(p.ID)
		}
	}

	return p, nil
}

// GetPhotoURL implements profile.ProfileService.
func (s *ProfileServiceImpl) GetPhotoURL(ctx context.Context, employeeID string) (string, error) {
	ok, err := s.backend.HasPhoto(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", profile.ErrPhotoNotFound
	}

	return s.backend.PhotoURL(employeeID), nil
}

// UploadPhoto implements profile.ProfileService.
func (s *ProfileServiceImpl) UploadPhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	if err := s.backend.UploadPhoto(ctx, employeeID, file, filename); err != nil {
		return "", err
	}

	return s.backend.PhotoURL(employeeID), nil
}

// DeletePhoto implements profile.ProfileService.
func (s *ProfileServiceImpl) DeletePhoto(ctx context.Context, employeeID string) error {
	return s.backend.DeletePhoto(ctx, employeeID)
}
