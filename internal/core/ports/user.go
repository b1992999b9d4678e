package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByCredentials(ctx context.Context, username, password string) (domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	FindUsername(ctx context.Context, id int64) (string, error)
	Create(ctx context.Context, username, password string) (int64, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	Register(ctx context.Context, username, password string) (int64, error)
}
