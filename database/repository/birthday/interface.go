package birthdayRepo

import (
	"context"

	"github.com/Binodkurmi/Birthday-reminderBackend/database"
	"github.com/Binodkurmi/Birthday-reminderBackend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BirthdayRepository defines methods for birthday record data access.
type BirthdayRepository interface {
	// Create inserts a new birthday record and returns its ID.
	Create(ctx context.Context, birthday *models.Birthday) (string, error)
	// GetByID retrieves a birthday record by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Birthday, error)
	// GetByUserID fetches all birthday records owned by a user.
	GetByUserID(ctx context.Context, userID string) ([]models.Birthday, error)
	// Update modifies an existing birthday record.
	Update(ctx context.Context, birthday *models.Birthday) error
	// Delete removes a birthday record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoBirthdayRepo struct {
	coll *mongo.Collection
}

// NewMongoBirthdayRepo returns a new BirthdayRepository instance using MongoDB.
func NewMongoBirthdayRepo() BirthdayRepository {
	return &mongoBirthdayRepo{
		coll: database.Collection("birthdays"),
	}
}
