package reminder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"
)

// reminderMessage phrases the alert by day-count bucket.
func reminderMessage(name string, daysUntil int) string {
	switch daysUntil {
	case 0:
		return fmt.Sprintf("Today is %s's birthday!", name)
	case 1:
		return fmt.Sprintf("%s's birthday is tomorrow!", name)
	default:
		return fmt.Sprintf("%s's birthday is in %d days", name, daysUntil)
	}
}

// createNotification builds and persists the reminder notification, returning
// the stored record.
func (s *DefaultReminderService) createNotification(ctx context.Context, userID string, birthday models.Birthday, daysUntil int) (*models.Notification, error) {
	notification := models.Notification{
		UserID:     userID,
		BirthdayID: birthday.ID,
		Type:       models.NotificationTypeBirthdayReminder,
		Message:    reminderMessage(birthday.Name, daysUntil),
		Data:       map[string]string{"daysUntil": strconv.Itoa(daysUntil)},
	}

	stored, err := s.Notifications.Create(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("reminder: failed to store notification for birthday %s: %w", birthday.ID, err)
	}
	return stored, nil
}
