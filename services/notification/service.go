package notification

import (
	"context"
	"fmt"

	notificationRepo "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/notification"
	"github.com/Binodkurmi/Birthday-reminderBackend/models"
)

// NotificationService exposes the user-facing notification management
// operations. It never creates notifications; the reminder scan does that.
type NotificationService interface {
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	ListUnread(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// ListByUser returns all of a user's notifications, newest first.
func (s *DefaultNotificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// ListUnread returns a user's unread notifications, newest first.
func (s *DefaultNotificationService) ListUnread(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.Repo.GetUnreadByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, id string) error {
	if err := s.Repo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// Delete removes one of the user's notifications.
func (s *DefaultNotificationService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
