package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// verifyPasswordComplexity checks minimum length and at least one digit.
func verifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !regexp.MustCompile(`[0-9]`).MatchString(pw) {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

// RegisterUser creates a new user and returns an auth token.
func (s *DefaultUserService) RegisterUser(ctx context.Context, user models.User) (*AuthResponse, error) {
	if user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if user.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !emailPattern.MatchString(user.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if err := verifyPasswordComplexity(user.Password); err != nil {
		return nil, err
	}

	// Check for an existing user.
	existing, err := s.Repo.GetByEmail(ctx, user.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	// Hash the provided password.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = "" // Clear plain-text password

	if err := s.Repo.Create(ctx, &user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:           user.ID,
		Token:        token,
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}, nil
}

// AuthenticateUser verifies credentials and returns a fresh auth token.
func (s *DefaultUserService) AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:           userRec.ID,
		Token:        token,
		Username:     userRec.Username,
		Email:        userRec.Email,
		ProfileImage: userRec.ProfileImage,
	}, nil
}
