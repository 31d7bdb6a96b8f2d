package reminder

import (
	"context"
	"time"

	birthdayRepo "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/birthday"
	notificationRepo "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/notification"
	userRepo "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/user"
)

// AlertWindows are the day-counts before an occurrence that produce a
// reminder. Only exact membership triggers one.
var AlertWindows = []int{7, 3, 1, 0}

// DedupLookback is how far back the guard searches for an identical alert.
// Twice the nominal 24h cycle period, so one late or re-run cycle never
// re-alerts while distinct day-count windows on later days still fire.
const DedupLookback = 48 * time.Hour

// ReminderService runs the daily birthday scan.
type ReminderService interface {
	// RunCycle performs one scan over all users and their birthday records,
	// creating notifications for records inside an alert window that have not
	// already been notified within the dedup lookback. The first error ends
	// the cycle early; notifications created before it are kept.
	RunCycle(ctx context.Context) error
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Users         userRepo.UserRepository
	Birthdays     birthdayRepo.BirthdayRepository
	Notifications notificationRepo.NotificationRepository

	// Location the scan computes "today" in; defaults to time.Local.
	Location *time.Location
	// Now is the clock, overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultReminderService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}
