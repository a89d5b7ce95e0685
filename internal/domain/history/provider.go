package history

import "context"

// Provider supplies raw attendance/leave records for an employee.
//
// Implementations must degrade transport failures (network unreachable,
// timeout, malformed payload) to an empty Payload with a nil error so the
// aggregation pipeline always has something to work with. The returned error
// is reserved for context cancellation.
type Provider interface {
	FetchHistory(ctx context.Context, employeeID string) (Payload, error)
}
