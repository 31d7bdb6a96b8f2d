package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/services/reminder"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// triggerHour is the local hour at which the daily reminder scan fires.
const triggerHour = 8

// cycleTimeout bounds one scan cycle; a scan over realistic data volumes
// completes in well under this, so cycles never overlap the 24h period.
const cycleTimeout = 10 * time.Minute

// ReminderScheduler owns the daily trigger for the reminder scan. The cron
// engine recomputes the next 08:00 wall-clock instant every cycle, so the
// trigger hour holds across DST transitions instead of drifting with a raw
// 24h period.
type ReminderScheduler struct {
	engine   *cronv3.Cron
	service  reminder.ReminderService
	location *time.Location
}

// NewReminderScheduler builds a scheduler firing in the given location.
func NewReminderScheduler(service reminder.ReminderService, location *time.Location) *ReminderScheduler {
	if location == nil {
		location = time.Local
	}
	return &ReminderScheduler{
		engine:   cronv3.New(cronv3.WithLocation(location)),
		service:  service,
		location: location,
	}
}

// Start registers the daily job and begins waiting for the next trigger.
// Cycle errors are logged and never cancel or reschedule the trigger.
func (s *ReminderScheduler) Start() error {
	logger := utils.GetLogger()

	spec := fmt.Sprintf("0 %d * * *", triggerHour)
	_, err := s.engine.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		defer cancel()

		logger.Info("reminder scheduler: daily scan triggered")
		if err := s.service.RunCycle(ctx); err != nil {
			logger.Error("reminder scheduler: scan cycle aborted early", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("reminder scheduler: failed to register daily job: %w", err)
	}

	s.engine.Start()
	now := time.Now().In(s.location)
	next := NextTrigger(now)
	logger.Info("reminder scheduler: started",
		zap.String("spec", spec),
		zap.Time("firstTrigger", next),
		zap.Duration("initialDelay", next.Sub(now)),
	)
	return nil
}

// Stop halts the trigger and waits for a running cycle to finish.
func (s *ReminderScheduler) Stop() {
	ctx := s.engine.Stop()
	<-ctx.Done()
	utils.GetLogger().Info("reminder scheduler: stopped")
}

// NextTrigger returns the next daily trigger instant strictly after now:
// today at the trigger hour if that is still in the future, otherwise
// tomorrow at the trigger hour.
func NextTrigger(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), triggerHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
