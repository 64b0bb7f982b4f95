package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"github.com/TemiKayode/wumikay-ventures/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestJWTManager() *utils.JWTManager {
	return utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ade@example.com").Return(nil, nil)
	userRepo.On("GetByUsername", mock.Anything, "ade").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(nil).Once()

	svc := service.NewAuthService(userRepo, newTestJWTManager())
	user, err := svc.Register(context.Background(), &service.RegisterInput{
		Username: "ade",
		Email:    "  Ade@Example.com ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ade@example.com", user.Email, "email is normalized")
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password is stored hashed")
	assert.True(t, utils.CheckPasswordHash("secret123", user.Password))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ade@example.com").
		Return(&entity.User{ID: 1, Email: "ade@example.com"}, nil)

	svc := service.NewAuthService(userRepo, newTestJWTManager())
	_, err := svc.Register(context.Background(), &service.RegisterInput{
		Username: "ade",
		Email:    "ade@example.com",
		Password: "secret123",
	})

	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_LoginAndRefresh(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ade@example.com").
		Return(&entity.User{ID: 1, Email: "ade@example.com", Password: hash, Role: "admin"}, nil)

	svc := service.NewAuthService(userRepo, newTestJWTManager())
	out, err := svc.Login(context.Background(), &service.LoginInput{
		Email:    "ade@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	refreshed, err := svc.RefreshToken(context.Background(), out.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ade@example.com").
		Return(&entity.User{ID: 1, Email: "ade@example.com", Password: hash}, nil)

	svc := service.NewAuthService(userRepo, newTestJWTManager())
	_, err = svc.Login(context.Background(), &service.LoginInput{
		Email:    "ade@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	svc := service.NewAuthService(userRepo, newTestJWTManager())
	_, err := svc.Login(context.Background(), &service.LoginInput{
		Email:    "ghost@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthService_RefreshTokenRejectsGarbage(t *testing.T) {
	svc := service.NewAuthService(new(MockUserRepository), newTestJWTManager())

	_, err := svc.RefreshToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
