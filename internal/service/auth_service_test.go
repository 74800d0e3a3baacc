package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "openeye/internal/errors"
	"openeye/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		userType      string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedType  string
	}{
		{
			name:     "successful registration",
			username: "ramesh",
			email:    "ramesh@example.com",
			password: "password123",
			userType: model.UserTypeGovernment,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ramesh").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "ramesh@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
			expectedType:  model.UserTypeGovernment,
		},
		{
			name:     "user type defaults to public",
			username: "suma",
			email:    "suma@example.com",
			password: "password123",
			userType: "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "suma").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "suma@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
			expectedType:  model.UserTypePublic,
		},
		{
			name:     "username already exists",
			username: "taken",
			email:    "new@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "taken").Return(&model.User{Username: "taken"}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name:     "email already exists",
			username: "newname",
			email:    "taken@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "newname").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo)
			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password, tt.userType)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.expectedType, user.UserType)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login returns stored user type",
			username: "ramesh",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ramesh").Return(&model.User{
					ID:           7,
					Username:     "ramesh",
					PasswordHash: string(hashedPassword),
					UserType:     model.UserTypeGovernment,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			username: "ramesh",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ramesh").Return(&model.User{
					Username:     "ramesh",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown username reports the same error",
			username: "ghost",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo)
			user, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, uint(7), user.ID)
				assert.Equal(t, model.UserTypeGovernment, user.UserType)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
