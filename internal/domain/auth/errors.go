package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidPIN        = errors.New("pin did not match any employee")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrAlreadyRegistered = errors.New("employee is already registered on this device")
	ErrUserNotRegistered = errors.New("employee is not registered on this device")
	ErrNoRegisteredUsers = errors.New("no registered users on this device")
)
