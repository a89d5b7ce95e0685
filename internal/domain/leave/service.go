package leave

import "context"

// LeaveService submits leave applications to the backend for approval.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyRequest) (ApplyResponse, error)
}
