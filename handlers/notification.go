package handlers

import (
	"net/http"

	"github.com/Binodkurmi/Birthday-reminderBackend/services/notification"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves notification management endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(service notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notifications, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list notifications", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// ListUnreadNotificationsHandler handles GET /api/notifications/unread.
func (h *NotificationHandler) ListUnreadNotificationsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notifications, err := h.Service.ListUnread(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list unread notifications", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// DeleteNotificationHandler handles DELETE /api/notifications/:id.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
