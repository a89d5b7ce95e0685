package profile

import "errors"

// Profile domain errors
var (
	ErrProfileNotFound = errors.New("employee profile not found")
	ErrPhotoNotFound   = errors.New("no active photo for this employee")
)
