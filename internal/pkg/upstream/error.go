package upstream

import (
	"errors"
	"fmt"
)

// ErrConnectionFailed covers every transport-level failure talking to the
// backend: unreachable host, timeout, connection reset. Callers surface it
// as a generic "connection failed" condition, never as a raw error string.
var ErrConnectionFailed = errors.New("connection to attendance backend failed")

// Error is a failure the backend itself reported: a non-2xx status, a
// success:false envelope, or a body that was not JSON at all.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend error (%d): %s", e.Status, e.Msg)
	}
	return "backend error: " + e.Msg
}
