package leave

import (
	"context"

	"github.com/google/uuid"

	"github.com/attendly/attendance-gateway-go/internal/domain/leave"
)

// Backend is the subset of the upstream client the leave service needs.
type Backend interface {
	ApplyLeave(ctx context.Context, req leave.ApplyRequest, requestID string) (string, error)
}

type LeaveServiceImpl struct {
	backend Backend
	newID   func() string
}

func NewLeaveService(backend Backend) leave.LeaveService {
	return &LeaveServiceImpl{
		backend: backend,
		newID:   uuid.NewString,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.ApplyResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyResponse{}, err
	}

	requestID := s.newID()
	msg, err := s.backend.ApplyLeave(ctx, req, requestID)
	if err != nil {
		return leave.ApplyResponse{}, err
	}

	return leave.ApplyResponse{RequestID: requestID, Message: msg}, nil
}
