package service

import (
	"context"
	"errors"

	"qiyada/internal/model"
	"qiyada/internal/repository"
)

var ErrUsernameTaken = errors.New("username already exists")

// UserService handles admin-facing user management
type UserService struct {
	userRepo repository.UserRepo
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateAdmin creates a new administrator account
func (s *UserService) CreateAdmin(ctx context.Context, username, password, fullName string) (*model.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		FullName:     fullName,
		Locale:       "en",
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List retrieves users, optionally filtered by role
func (s *UserService) List(ctx context.Context, role model.Role) ([]*model.User, error) {
	return s.userRepo.List(ctx, role)
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
