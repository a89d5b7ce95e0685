package note

import "github.com/attendly/attendance-gateway-go/internal/pkg/validator"

type PutNoteRequest struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

func (r *PutNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
