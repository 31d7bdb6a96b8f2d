package user

import (
	"context"

	userRepo "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/user"
	"github.com/Binodkurmi/Birthday-reminderBackend/models"
)

// UserService defines account management operations.
type UserService interface {
	RegisterUser(ctx context.Context, user models.User) (*AuthResponse, error)
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, updates UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserUpdate carries the mutable user fields.
type UserUpdate struct {
	Username     string `json:"username,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
