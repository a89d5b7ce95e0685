package leave

import (
	"github.com/attendly/attendance-gateway-go/internal/pkg/validator"
)

const (
	TypeFull   = "full"
	TypeHalf   = "half"
	TypeShort  = "short"
	TypeCustom = "custom"
)

type ApplyRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`
	FromDate   string `json:"from_date,omitempty"`
	ToDate     string `json:"to_date,omitempty"`

	// RequestID is assigned by the service before submission so a retried
	// application can be recognized upstream.
	RequestID string `json:"-"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	switch r.Type {
	case TypeFull, TypeHalf, TypeShort:
	case TypeCustom:
		from, fromOK := validator.IsValidDate(r.FromDate)
		to, toOK := validator.IsValidDate(r.ToDate)
		if !fromOK {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be in YYYY-MM-DD format",
			})
		}
		if !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be in YYYY-MM-DD format",
			})
		}
		if fromOK && toOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must not be before from_date",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: full, half, short, custom",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplyResponse struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}
