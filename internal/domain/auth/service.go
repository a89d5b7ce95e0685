package auth

import "context"

// AuthService defines login and device-registration operations.
type AuthService interface {
	// LoginPIN authenticates the PIN against the backend and mints a
	// local access token.
	LoginPIN(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginLocal authenticates the PIN against the device-local
	// registered-user list without a network round trip.
	LoginLocal(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// RegisterDevice verifies the PIN upstream and caches the employee
	// locally for biometric/offline login.
	RegisterDevice(ctx context.Context, req RegisterDeviceRequest) (RegisteredUserResponse, error)

	// ListRegistered returns the device-local registered users.
	ListRegistered(ctx context.Context) ([]RegisteredUserResponse, error)

	// RemoveRegistered unlinks one registered user from this device.
	RemoveRegistered(ctx context.Context, id string) error
}
