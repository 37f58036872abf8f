package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/service"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           1,
		Username:     "pair",
		Email:        "pair@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	user := activeUser(t, "correct horse")

	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "pair@example.com").Return(user, nil)
	mockRepo.On("TouchLastLogin", mock.Anything, 1).Return(nil)

	s := service.NewAuthService(mockRepo, service.NewJWTService(testConfig()))
	pair, got, err := s.Login(context.Background(), "pair@example.com", "correct horse")

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := activeUser(t, "correct horse")

	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "pair@example.com").Return(user, nil)

	s := service.NewAuthService(mockRepo, service.NewJWTService(testConfig()))
	_, _, err := s.Login(context.Background(), "pair@example.com", "wrong")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	mockRepo.AssertNotCalled(t, "TouchLastLogin")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	s := service.NewAuthService(mockRepo, service.NewJWTService(testConfig()))
	_, _, err := s.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	user := activeUser(t, "correct horse")
	user.IsActive = false

	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "pair@example.com").Return(user, nil)

	s := service.NewAuthService(mockRepo, service.NewJWTService(testConfig()))
	_, _, err := s.Login(context.Background(), "pair@example.com", "correct horse")

	assert.ErrorIs(t, err, service.ErrAccountDisabled)
}

func TestAuthService_Refresh(t *testing.T) {
	jwtService := service.NewJWTService(testConfig())
	refresh, err := jwtService.GenerateRefreshToken(1)
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByID", mock.Anything, 1).Return(&domain.User{ID: 1, IsActive: true}, nil)

	s := service.NewAuthService(mockRepo, jwtService)
	pair, err := s.Refresh(context.Background(), refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	jwtService := service.NewJWTService(testConfig())
	access, err := jwtService.GenerateAccessToken(1)
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	s := service.NewAuthService(mockRepo, jwtService)

	_, err = s.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	mockRepo.AssertNotCalled(t, "GetByID")
}
