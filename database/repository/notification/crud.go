package notificationRepo

import (
	"context"
	"errors"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create persists a new notification and returns the stored record.
func (r *mongoNotificationRepo) Create(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// FindRecent returns notifications matching the same user, birthday record and
// day-count created at or after since.
func (r *mongoNotificationRepo) FindRecent(ctx context.Context, userID, birthdayID, daysUntil string, since time.Time) ([]models.Notification, error) {
	filter := bson.M{
		"userId":         userID,
		"birthdayId":     birthdayID,
		"data.daysUntil": daysUntil,
		"createdAt":      bson.M{"$gte": since},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// GetByUserID returns all notifications for a user, newest first.
func (r *mongoNotificationRepo) GetByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// GetUnreadByUserID returns a user's unread notifications, newest first.
func (r *mongoNotificationRepo) GetUnreadByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	return r.find(ctx, bson.M{"userId": userID, "read": false})
}

func (r *mongoNotificationRepo) find(ctx context.Context, filter bson.M) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a user's notification as read.
func (r *mongoNotificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}

// Delete removes a user's notification.
func (r *mongoNotificationRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}
