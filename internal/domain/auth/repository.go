package auth

import "context"

type RegisteredUserRepository interface {
	Save(ctx context.Context, u RegisteredUser) (RegisteredUser, error)
	FindByID(ctx context.Context, id string) (RegisteredUser, error)
	FindAll(ctx context.Context) ([]RegisteredUser, error)
	Delete(ctx context.Context, id string) error
}
