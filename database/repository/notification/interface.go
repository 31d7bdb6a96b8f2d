package notificationRepo

import (
	"context"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/database"
	"github.com/Binodkurmi/Birthday-reminderBackend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository defines methods for notification data access. The
// reminder scan only appends and queries; read/unread mutation belongs to the
// user-facing endpoints.
type NotificationRepository interface {
	// Create persists a new notification, assigning its ID and creation
	// timestamp, and returns the stored record.
	Create(ctx context.Context, notification models.Notification) (*models.Notification, error)
	// FindRecent returns notifications for the same user, birthday record and
	// day-count (canonical string form) created at or after since.
	FindRecent(ctx context.Context, userID, birthdayID, daysUntil string, since time.Time) ([]models.Notification, error)
	// GetByUserID returns all notifications for a user, newest first.
	GetByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	// GetUnreadByUserID returns a user's unread notifications, newest first.
	GetUnreadByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkRead flags a user's notification as read.
	MarkRead(ctx context.Context, userID, id string) error
	// Delete removes a user's notification.
	Delete(ctx context.Context, userID, id string) error
	// EnsureIndexes creates the collection's indexes.
	EnsureIndexes(ctx context.Context) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a new NotificationRepository instance using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.Collection("notifications"),
	}
}
