package service

import (
	"context"
	"errors"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.userRepository.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	return user, nil
}

// Register refuses duplicate usernames via a pre-check read. The check and
// the insert are separate statements, so two concurrent registrations can
// both pass the check; the unique constraint on the column then rejects the
// second insert at the storage level.
func (s *UserService) Register(ctx context.Context, username, password string) (int64, error) {
	taken, err := s.userRepository.UsernameExists(ctx, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, domain.ErrUsernameTaken
	}
	return s.userRepository.Create(ctx, username, password)
}

var _ ports.UserService = (*UserService)(nil)
