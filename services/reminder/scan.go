package reminder

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"go.uber.org/zap"
)

// RunCycle performs one sequential scan over every user's birthday records.
func (s *DefaultReminderService) RunCycle(ctx context.Context) error {
	logger := utils.GetLogger()
	now := s.now().In(s.location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location())

	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reminder: failed to list users: %w", err)
	}

	created := 0
	for _, user := range users {
		birthdays, err := s.Birthdays.GetByUserID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("reminder: failed to list birthdays for user %s: %w", user.ID, err)
		}

		for _, birthday := range birthdays {
			if !birthday.RemindersEnabled {
				continue
			}
			if birthday.Month < 1 || birthday.Month > 12 || birthday.Day < 1 {
				return fmt.Errorf("reminder: birthday %s has invalid recurring date %d/%d", birthday.ID, birthday.Month, birthday.Day)
			}

			daysUntil := DaysUntil(time.Month(birthday.Month), birthday.Day, today)
			if !isAlertWindow(daysUntil) {
				continue
			}

			notified, err := s.alreadyNotified(ctx, user.ID, birthday.ID, daysUntil, now)
			if err != nil {
				return err
			}
			if notified {
				continue
			}

			notification, err := s.createNotification(ctx, user.ID, birthday, daysUntil)
			if err != nil {
				return err
			}
			created++
			logger.Debug("reminder: notification created",
				zap.String("userId", user.ID),
				zap.String("birthdayId", birthday.ID),
				zap.Int("daysUntil", daysUntil),
				zap.String("notificationId", notification.ID),
			)
		}
	}

	logger.Info("reminder: scan cycle complete",
		zap.Int("users", len(users)),
		zap.Int("notificationsCreated", created),
	)
	return nil
}

// alreadyNotified reports whether an alert for this (user, birthday,
// day-count) triple was recorded within the dedup lookback. Storage errors
// propagate; they are never treated as "not yet notified".
func (s *DefaultReminderService) alreadyNotified(ctx context.Context, userID, birthdayID string, daysUntil int, now time.Time) (bool, error) {
	since := now.Add(-DedupLookback)
	recent, err := s.Notifications.FindRecent(ctx, userID, birthdayID, strconv.Itoa(daysUntil), since)
	if err != nil {
		return false, fmt.Errorf("reminder: dedup lookup failed for birthday %s: %w", birthdayID, err)
	}
	return len(recent) > 0, nil
}

func isAlertWindow(daysUntil int) bool {
	for _, window := range AlertWindows {
		if daysUntil == window {
			return true
		}
	}
	return false
}
