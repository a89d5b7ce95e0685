package punch

import (
	"context"

	"github.com/attendly/attendance-gateway-go/internal/domain/punch"
	"github.com/attendly/attendance-gateway-go/internal/pkg/upstream"
)

// Backend is the subset of the upstream client the punch service needs.
type Backend interface {
	Punch(ctx context.Context, payload upstream.PunchPayload) (string, error)
}

type PunchServiceImpl struct {
	backend Backend
}

func NewPunchService(backend Backend) punch.PunchService {
	return &PunchServiceImpl{backend: backend}
}

// Punch implements punch.PunchService.
func (s *PunchServiceImpl) Punch(ctx context.Context, req punch.PunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	payload := upstream.PunchPayload{
		PIN:  req.PIN,
		Type: req.Type,
	}
	if req.Location != nil {
		payload.Latitude = req.Location.Latitude
		payload.Longitude = req.Location.Longitude
		payload.Address = req.Location.Address
	}

	msg, err := s.backend.Punch(ctx, payload)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return punch.PunchResponse{Type: req.Type, Message: msg}, nil
}
