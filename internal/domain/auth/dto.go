package auth

import (
	"github.com/attendly/attendance-gateway-go/internal/pkg/validator"
)

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	PIN string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	} else if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be exactly 4 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterDeviceRequest struct {
	PIN string `json:"pin"`
}

func (r *RegisterDeviceRequest) Validate() error {
	login := LoginRequest{PIN: r.PIN}
	return login.Validate()
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	Employee  Employee `json:"employee"`
}

type RegisteredUserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	EmpCode string `json:"emp_code"`
}
