package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "openeye/internal/errors"
	"openeye/internal/model"
	"openeye/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login. No session or token is
// issued; login only verifies credentials and returns the stored summary.
type AuthService interface {
	Register(ctx context.Context, username, email, password, userType string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a new user with a hashed password. Username and email
// must both be unused; userType defaults to "public" when empty.
func (s *authService) Register(ctx context.Context, username, email, password, userType string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	if userType == "" {
		userType = model.UserTypePublic
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		UserType:     userType,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the password against the stored bcrypt hash. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
