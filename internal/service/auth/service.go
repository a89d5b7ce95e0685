package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/attendly/attendance-gateway-go/internal/domain/auth"
	"github.com/attendly/attendance-gateway-go/internal/pkg/jwt"
)

// Backend is the subset of the upstream client the auth service needs.
type Backend interface {
	LoginByPIN(ctx context.Context, pin string) (auth.Employee, error)
	WhoAmI(ctx context.Context, pin string) (auth.Employee, error)
}

type AuthServiceImpl struct {
	backend Backend
	auth.RegisteredUserRepository
	jwtService jwt.Service
}

func NewAuthService(backend Backend, repo auth.RegisteredUserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		backend:                  backend,
		RegisteredUserRepository: repo,
		jwtService:               jwtService,
	}
}

// LoginPIN implements auth.AuthService.
func (s *AuthServiceImpl) LoginPIN(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	employee, err := s.backend.LoginByPIN(ctx, req.PIN)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueToken(employee)
}

// LoginLocal implements auth.AuthService.
func (s *AuthServiceImpl) LoginLocal(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	users, err := s.RegisteredUserRepository.FindAll(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load registered users: %w", err)
	}
	if len(users) == 0 {
		return auth.LoginResponse{}, auth.ErrNoRegisteredUsers
	}

	for _, u := range users {
		if bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(req.PIN)) == nil {
			return s.issueToken(auth.Employee{ID: u.ID, Name: u.Name, EmpCode: u.EmpCode})
		}
	}

	return auth.LoginResponse{}, auth.ErrInvalidPIN
}

// RegisterDevice implements auth.AuthService.
func (s *AuthServiceImpl) RegisterDevice(ctx context.Context, req auth.RegisterDeviceRequest) (auth.RegisteredUserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisteredUserResponse{}, err
	}

	employee, err := s.backend.WhoAmI(ctx, req.PIN)
	if err != nil {
		return auth.RegisteredUserResponse{}, err
	}

	if _, err := s.RegisteredUserRepository.FindByID(ctx, employee.ID); err == nil {
		return auth.RegisteredUserResponse{}, auth.ErrAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisteredUserResponse{}, fmt.Errorf("failed to hash pin: %w", err)
	}

	saved, err := s.RegisteredUserRepository.Save(ctx, auth.RegisteredUser{
		ID:      employee.ID,
		Name:    employee.Name,
		EmpCode: employee.EmpCode,
		PINHash: string(hash),
	})
	if err != nil {
		return auth.RegisteredUserResponse{}, fmt.Errorf("failed to save registered user: %w", err)
	}

	return mapRegisteredUserToResponse(saved), nil
}

// ListRegistered implements auth.AuthService.
func (s *AuthServiceImpl) ListRegistered(ctx context.Context) ([]auth.RegisteredUserResponse, error) {
	users, err := s.RegisteredUserRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registered users: %w", err)
	}

	responses := make([]auth.RegisteredUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapRegisteredUserToResponse(u))
	}

	return responses, nil
}

// RemoveRegistered implements auth.AuthService.
func (s *AuthServiceImpl) RemoveRegistered(ctx context.Context, id string) error {
	return s.RegisteredUserRepository.Delete(ctx, id)
}

func (s *AuthServiceImpl) issueToken(employee auth.Employee) (auth.LoginResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(employee)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  employee,
	}, nil
}

func mapRegisteredUserToResponse(u auth.RegisteredUser) auth.RegisteredUserResponse {
	return auth.RegisteredUserResponse{
		ID:      u.ID,
		Name:    u.Name,
		EmpCode: u.EmpCode,
	}
}
