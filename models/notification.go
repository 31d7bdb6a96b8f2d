package models

import "time"

// NotificationTypeBirthdayReminder tags notifications produced by the daily
// reminder scan, distinguishing them from other notification categories.
const NotificationTypeBirthdayReminder = "birthday_reminder"

type Notification struct {
	ID         string            `bson:"id" json:"id"`
	UserID     string            `bson:"userId" json:"userId"`
	BirthdayID string            `bson:"birthdayId,omitempty" json:"birthdayId,omitempty"`
	Type       string            `bson:"type" json:"type"`
	Message    string            `bson:"message" json:"message"`
	Data       map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read       bool              `bson:"read" json:"read"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
}
