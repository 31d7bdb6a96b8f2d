package user

import (
	"context"
	"fmt"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"go.uber.org/zap"
)

// GetUserByID fetches a user by ID.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return usr, nil
}

// UpdateUser applies the mutable profile fields and returns the updated record.
func (s *DefaultUserService) UpdateUser(ctx context.Context, id string, updates UserUpdate) (*models.User, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if updates.Username != "" {
		existing.Username = updates.Username
	}
	if updates.ProfileImage != "" {
		existing.ProfileImage = updates.ProfileImage
	}

	if err := s.Repo.Update(ctx, existing); err != nil {
		utils.GetLogger().Error("Failed to update user", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return existing, nil
}

// DeleteUser removes a user account.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
