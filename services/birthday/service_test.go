package birthday

import (
	"context"
	"errors"
	"testing"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"

	"github.com/google/uuid"
)

type fakeBirthdayRepo struct {
	records map[string]models.Birthday
}

func newFakeBirthdayRepo() *fakeBirthdayRepo {
	return &fakeBirthdayRepo{records: make(map[string]models.Birthday)}
}

func (f *fakeBirthdayRepo) Create(ctx context.Context, birthday *models.Birthday) (string, error) {
	if birthday.ID == "" {
		birthday.ID = uuid.New().String()
	}
	f.records[birthday.ID] = *birthday
	return birthday.ID, nil
}

func (f *fakeBirthdayRepo) GetByID(ctx context.Context, id string) (*models.Birthday, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, errors.New("birthday record not found")
	}
	return &record, nil
}

func (f *fakeBirthdayRepo) GetByUserID(ctx context.Context, userID string) ([]models.Birthday, error) {
	var out []models.Birthday
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeBirthdayRepo) Update(ctx context.Context, birthday *models.Birthday) error {
	if _, ok := f.records[birthday.ID]; !ok {
		return errors.New("birthday record not found")
	}
	f.records[birthday.ID] = *birthday
	return nil
}

func (f *fakeBirthdayRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return errors.New("birthday record not found")
	}
	delete(f.records, id)
	return nil
}

func TestCreateValidatesRecurringDate(t *testing.T) {
	svc := &DefaultBirthdayService{Repo: newFakeBirthdayRepo()}
	ctx := context.Background()

	tests := []struct {
		name    string
		month   int
		day     int
		wantErr bool
	}{
		{"valid date", 3, 17, false},
		{"leap day is allowed", 2, 29, false},
		{"month too large", 13, 1, true},
		{"month too small", 0, 10, true},
		{"february 30th", 2, 30, true},
		{"april 31st", 4, 31, true},
		{"day zero", 6, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, models.Birthday{
				UserID:           "u1",
				Name:             "Anna",
				Month:            tt.month,
				Day:              tt.day,
				RemindersEnabled: true,
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("Create(month=%d, day=%d) error = %v, wantErr %v", tt.month, tt.day, err, tt.wantErr)
			}
		})
	}
}

func TestCreateRequiresNameAndOwner(t *testing.T) {
	svc := &DefaultBirthdayService{Repo: newFakeBirthdayRepo()}
	ctx := context.Background()

	if _, err := svc.Create(ctx, models.Birthday{UserID: "u1", Month: 3, Day: 17}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := svc.Create(ctx, models.Birthday{Name: "Anna", Month: 3, Day: 17}); err == nil {
		t.Error("expected error for missing owner")
	}
}

func TestGetByIDEnforcesOwnership(t *testing.T) {
	repo := newFakeBirthdayRepo()
	svc := &DefaultBirthdayService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Birthday{UserID: "u1", Name: "Anna", Month: 3, Day: 17, RemindersEnabled: true})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.GetByID(ctx, "u1", created.ID); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, "u2", created.ID); err == nil {
		t.Error("expected lookup by a different user to fail")
	}
}

func TestUpdatePreservesOwnerAndCreationTime(t *testing.T) {
	repo := newFakeBirthdayRepo()
	svc := &DefaultBirthdayService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Birthday{UserID: "u1", Name: "Anna", Month: 3, Day: 17, RemindersEnabled: true})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(ctx, "u1", models.Birthday{
		ID:               created.ID,
		UserID:           "someone-else", // must be ignored
		Name:             "Anna Maria",
		Month:            4,
		Day:              1,
		RemindersEnabled: false,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.UserID != "u1" {
		t.Errorf("Update changed owner to %q", updated.UserID)
	}
	if updated.Name != "Anna Maria" || updated.Month != 4 || updated.Day != 1 {
		t.Errorf("Update did not apply fields: %+v", updated)
	}

	// A different user cannot update the record.
	if _, err := svc.Update(ctx, "u2", models.Birthday{ID: created.ID, Name: "X", Month: 5, Day: 5}); err == nil {
		t.Error("expected update by a different user to fail")
	}
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	repo := newFakeBirthdayRepo()
	svc := &DefaultBirthdayService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Birthday{UserID: "u1", Name: "Anna", Month: 3, Day: 17, RemindersEnabled: true})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(ctx, "u2", created.ID); err == nil {
		t.Error("expected delete by a different user to fail")
	}
	if err := svc.Delete(ctx, "u1", created.ID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}
