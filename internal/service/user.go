package service

import (
	"context"
	"strings"

	"eventmanagement/internal/model"
)

// UserService orchestrates user operations.
type UserService struct {
	users UserStore
}

// NewUserService constructs a UserService with its dependencies.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// CreateUser validates the request and delegates to the repository. User IDs
// are caller-supplied, never generated.
func (s *UserService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.Name = strings.TrimSpace(req.Name)
	if req.UserID == "" {
		return nil, invalid("userId is required")
	}
	if req.Name == "" {
		return nil, invalid("name is required")
	}
	return s.users.Create(ctx, req.UserID, req.Name)
}

// GetUser returns a single user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, invalid("user id is required")
	}
	return s.users.GetByID(ctx, userID)
}
