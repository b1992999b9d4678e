package service_test

import (
	"context"
	"testing"

	"taskboard/internal/app/service"
	"taskboard/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_RefusesDuplicate(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("UsernameExists", mock.Anything, "daniel").Return(true, nil).Once()

	svc := service.NewUserService(userRepo)

	_, err := svc.Register(context.Background(), "daniel", "123456")
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Register_CreatesWhenFree(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("UsernameExists", mock.Anything, "daniel").Return(false, nil).Once()
	userRepo.On("Create", mock.Anything, "daniel", "123456").Return(int64(5), nil).Once()

	svc := service.NewUserService(userRepo)

	id, err := svc.Register(context.Background(), "daniel", "123456")
	require.NoError(t, err)
	require.Equal(t, int64(5), id)
	userRepo.AssertExpectations(t)
}

func TestUserService_Authenticate_MapsMissToInvalidCredentials(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByCredentials", mock.Anything, "daniel", "wrong").
		Return(domain.User{}, domain.ErrUserNotFound).Once()

	svc := service.NewUserService(userRepo)

	_, err := svc.Authenticate(context.Background(), "daniel", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByCredentials", mock.Anything, "daniel", "123456").
		Return(domain.User{ID: 5, Username: "daniel"}, nil).Once()

	svc := service.NewUserService(userRepo)

	user, err := svc.Authenticate(context.Background(), "daniel", "123456")
	require.NoError(t, err)
	require.Equal(t, int64(5), user.ID)
	require.Equal(t, "daniel", user.Username)
}
