package history

import "errors"

// History domain errors
var (
	ErrDayNotFound = errors.New("no record exists for the requested date")
)
