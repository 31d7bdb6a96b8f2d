package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route registrar wires up.
type HandlerBundle struct {
	User         *UserHandler
	Birthday     *BirthdayHandler
	Notification *NotificationHandler
	Storage      *StorageHandler
}

// currentUserID extracts the authenticated user's ID set by the JWT middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		return "", false
	}
	return idStr, true
}
