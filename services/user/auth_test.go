package user

import (
	"context"
	"errors"
	"testing"

	"github.com/Binodkurmi/Birthday-reminderBackend/config"
	"github.com/Binodkurmi/Birthday-reminderBackend/models"

	"github.com/google/uuid"
)

func init() {
	config.AppConfig.JWTSecret = "test-secret"
}

type fakeUserRepo struct {
	byEmail map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range f.byEmail {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error     { return nil }

func TestRegisterUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	resp, err := svc.RegisterUser(ctx, models.User{
		Username: "binod",
		Email:    "binod@example.com",
		Password: "sup3r-secret",
	})
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if resp.ID == "" || resp.Token == "" {
		t.Errorf("expected ID and token in response, got %+v", resp)
	}

	// Duplicate email is rejected.
	if _, err := svc.RegisterUser(ctx, models.User{
		Username: "other",
		Email:    "binod@example.com",
		Password: "an0ther-secret",
	}); err == nil {
		t.Error("expected duplicate email registration to fail")
	}
}

func TestRegisterUserValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	tests := []struct {
		name string
		user models.User
	}{
		{"missing email", models.User{Username: "a", Password: "sup3r-secret"}},
		{"missing password", models.User{Username: "a", Email: "a@example.com"}},
		{"missing username", models.User{Email: "a@example.com", Password: "sup3r-secret"}},
		{"malformed email", models.User{Username: "a", Email: "not-an-email", Password: "sup3r-secret"}},
		{"short password", models.User{Username: "a", Email: "a@example.com", Password: "sh0rt"}},
		{"password without digit", models.User{Username: "a", Email: "a@example.com", Password: "no-digits-here"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RegisterUser(ctx, tt.user); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, models.User{
		Username: "binod",
		Email:    "binod@example.com",
		Password: "sup3r-secret",
	}); err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}

	resp, err := svc.AuthenticateUser(ctx, "binod@example.com", "sup3r-secret")
	if err != nil {
		t.Fatalf("AuthenticateUser returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token on successful login")
	}

	if _, err := svc.AuthenticateUser(ctx, "binod@example.com", "wrong-password"); err == nil {
		t.Error("expected wrong password to fail")
	}
	if _, err := svc.AuthenticateUser(ctx, "nobody@example.com", "sup3r-secret"); err == nil {
		t.Error("expected unknown email to fail")
	}
}
