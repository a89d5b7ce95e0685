package profile

import (
	"context"
	"io"
)

// ProfileService reads employee profiles and manages the profile photo
// through the backend.
type ProfileService interface {
	Get(ctx context.Context, empCode string) (Profile, error)

	GetPhotoURL(ctx context.Context, employeeID string) (string, error)
	UploadPhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)
	DeletePhoto(ctx context.Context, employeeID string) error
}
