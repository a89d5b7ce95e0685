package punch

import "context"

// PunchService records check-in/check-out events through the backend.
type PunchService interface {
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)
}
