package birthday

import (
	"context"
	"fmt"
	"time"

	birthdayRepo "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/birthday"
	"github.com/Binodkurmi/Birthday-reminderBackend/models"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"go.uber.org/zap"
)

// BirthdayService defines CRUD operations on a user's birthday records.
type BirthdayService interface {
	Create(ctx context.Context, birthday models.Birthday) (*models.Birthday, error)
	GetByID(ctx context.Context, userID, id string) (*models.Birthday, error)
	ListByUser(ctx context.Context, userID string) ([]models.Birthday, error)
	Update(ctx context.Context, userID string, birthday models.Birthday) (*models.Birthday, error)
	Delete(ctx context.Context, userID, id string) error
}

// DefaultBirthdayService is the production implementation.
type DefaultBirthdayService struct {
	Repo birthdayRepo.BirthdayRepository
}

// validateRecurringDate rejects a month/day pair that exists in no year.
// Feb 29 is allowed; the reminder scan clamps it in non-leap years.
func validateRecurringDate(month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	// Day 0 of the following month in a leap year gives the month's maximum.
	maxDay := time.Date(2000, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day < 1 || day > maxDay {
		return fmt.Errorf("day must be between 1 and %d for month %d", maxDay, month)
	}
	return nil
}

// Create validates and stores a new birthday record.
func (s *DefaultBirthdayService) Create(ctx context.Context, birthday models.Birthday) (*models.Birthday, error) {
	if birthday.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if birthday.UserID == "" {
		return nil, fmt.Errorf("owner is required")
	}
	if err := validateRecurringDate(birthday.Month, birthday.Day); err != nil {
		return nil, err
	}
	if birthday.NotifyDaysBefore < 0 {
		return nil, fmt.Errorf("notifyDaysBefore must not be negative")
	}

	if _, err := s.Repo.Create(ctx, &birthday); err != nil {
		utils.GetLogger().Error("Failed to create birthday record", zap.Error(err))
		return nil, fmt.Errorf("failed to create birthday record: %w", err)
	}
	return &birthday, nil
}

// GetByID fetches one of the user's birthday records.
func (s *DefaultBirthdayService) GetByID(ctx context.Context, userID, id string) (*models.Birthday, error) {
	birthday, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("birthday record not found: %w", err)
	}
	if birthday.UserID != userID {
		return nil, fmt.Errorf("birthday record not found")
	}
	return birthday, nil
}

// ListByUser fetches all of a user's birthday records.
func (s *DefaultBirthdayService) ListByUser(ctx context.Context, userID string) ([]models.Birthday, error) {
	birthdays, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthday records: %w", err)
	}
	return birthdays, nil
}

// Update validates and replaces one of the user's birthday records.
func (s *DefaultBirthdayService) Update(ctx context.Context, userID string, birthday models.Birthday) (*models.Birthday, error) {
	existing, err := s.GetByID(ctx, userID, birthday.ID)
	if err != nil {
		return nil, err
	}
	if err := validateRecurringDate(birthday.Month, birthday.Day); err != nil {
		return nil, err
	}
	if birthday.NotifyDaysBefore < 0 {
		return nil, fmt.Errorf("notifyDaysBefore must not be negative")
	}

	birthday.UserID = existing.UserID
	birthday.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, &birthday); err != nil {
		utils.GetLogger().Error("Failed to update birthday record", zap.String("id", birthday.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update birthday record: %w", err)
	}
	return &birthday, nil
}

// Delete removes one of the user's birthday records.
func (s *DefaultBirthdayService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete birthday record: %w", err)
	}
	return nil
}
