package birthdayRepo

import (
	"context"
	"errors"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new birthday record and returns its ID.
func (r *mongoBirthdayRepo) Create(ctx context.Context, birthday *models.Birthday) (string, error) {
	if birthday.ID == "" {
		birthday.ID = uuid.New().String()
	}
	now := time.Now()
	birthday.CreatedAt = now
	birthday.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, birthday)
	if err != nil {
		return "", err
	}
	return birthday.ID, nil
}

// GetByID returns a birthday record by its ID.
func (r *mongoBirthdayRepo) GetByID(ctx context.Context, id string) (*models.Birthday, error) {
	var birthday models.Birthday
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&birthday)
	if err != nil {
		return nil, err
	}
	return &birthday, nil
}

// GetByUserID fetches all birthday records owned by a user.
func (r *mongoBirthdayRepo) GetByUserID(ctx context.Context, userID string) ([]models.Birthday, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var birthdays []models.Birthday
	if err := cursor.All(ctx, &birthdays); err != nil {
		return nil, err
	}
	return birthdays, nil
}

// Update replaces an existing birthday record.
func (r *mongoBirthdayRepo) Update(ctx context.Context, birthday *models.Birthday) error {
	birthday.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": birthday.ID}, birthday)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("birthday record not found")
	}
	return nil
}

// Delete removes a birthday record by ID.
func (r *mongoBirthdayRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("birthday record not found")
	}
	return nil
}
