package models

import "time"

// Birthday is a recurring date record owned by a user. Recurrence uses only
// Month and Day; Year is informational (age display) and may be zero.
type Birthday struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	Name             string    `bson:"name" json:"name"`
	Month            int       `bson:"month" json:"month"`
	Day              int       `bson:"day" json:"day"`
	Year             int       `bson:"year,omitempty" json:"year,omitempty"`
	NotifyDaysBefore int       `bson:"notifyDaysBefore,omitempty" json:"notifyDaysBefore,omitempty"`
	RemindersEnabled bool      `bson:"remindersEnabled" json:"remindersEnabled"`
	ImageURL         string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
