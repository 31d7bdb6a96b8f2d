package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeNotificationService struct {
	notifications []models.Notification
}

func (f *fakeNotificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationService) ListUnread(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, userID, id string) error {
	for i, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			f.notifications[i].Read = true
			return nil
		}
	}
	return errors.New("notification not found")
}

func (f *fakeNotificationService) Delete(ctx context.Context, userID, id string) error {
	for i, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return errors.New("notification not found")
}

// setupNotificationRouter wires the handler behind a stub auth middleware
// that reads the user ID from a header.
func setupNotificationRouter(svc *fakeNotificationService) *gin.Engine {
	router := gin.New()
	handler := NewNotificationHandler(svc)

	api := router.Group("/api/notifications")
	api.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})
	{
		api.GET("", handler.ListNotificationsHandler)
		api.GET("/unread", handler.ListUnreadNotificationsHandler)
		api.PUT("/:id/read", handler.MarkNotificationReadHandler)
		api.DELETE("/:id", handler.DeleteNotificationHandler)
	}
	return router
}

func seedNotifications() *fakeNotificationService {
	return &fakeNotificationService{notifications: []models.Notification{
		{
			ID:        "n1",
			UserID:    "u1",
			Type:      models.NotificationTypeBirthdayReminder,
			Message:   "Anna's birthday is in 7 days",
			Data:      map[string]string{"daysUntil": "7"},
			CreatedAt: time.Now(),
		},
		{
			ID:        "n2",
			UserID:    "u1",
			Type:      models.NotificationTypeBirthdayReminder,
			Message:   "Today is Bob's birthday!",
			Data:      map[string]string{"daysUntil": "0"},
			Read:      true,
			CreatedAt: time.Now(),
		},
		{
			ID:      "n3",
			UserID:  "u2",
			Type:    models.NotificationTypeBirthdayReminder,
			Message: "Carol's birthday is tomorrow!",
		},
	}}
}

func TestListNotifications(t *testing.T) {
	router := setupNotificationRouter(seedNotifications())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got []models.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 notifications for u1, got %d", len(got))
	}
	for _, n := range got {
		if n.UserID != "u1" {
			t.Errorf("leaked notification for user %q", n.UserID)
		}
	}
}

func TestListNotificationsRequiresAuth(t *testing.T) {
	router := setupNotificationRouter(seedNotifications())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestListUnreadNotifications(t *testing.T) {
	router := setupNotificationRouter(seedNotifications())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/unread", nil)
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got []models.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n1" {
		t.Errorf("expected only the unread notification n1, got %+v", got)
	}
}

func TestMarkNotificationRead(t *testing.T) {
	svc := seedNotifications()
	router := setupNotificationRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/notifications/n1/read", nil)
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !svc.notifications[0].Read {
		t.Error("notification n1 was not marked read")
	}

	// Another user's notification is not reachable.
	req = httptest.NewRequest(http.MethodPut, "/api/notifications/n3/read", nil)
	req.Header.Set("X-User-ID", "u1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("cross-user mark read status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteNotification(t *testing.T) {
	svc := seedNotifications()
	router := setupNotificationRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/notifications/n2", nil)
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if len(svc.notifications) != 2 {
		t.Errorf("expected 2 notifications to remain, got %d", len(svc.notifications))
	}
}
