package handlers

import (
	"net/http"

	"github.com/Binodkurmi/Birthday-reminderBackend/models"
	"github.com/Binodkurmi/Birthday-reminderBackend/services/birthday"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BirthdayHandler serves birthday record CRUD endpoints.
type BirthdayHandler struct {
	Service birthday.BirthdayService
}

func NewBirthdayHandler(service birthday.BirthdayService) *BirthdayHandler {
	return &BirthdayHandler{Service: service}
}

type birthdayRequest struct {
	Name             string `json:"name" binding:"required"`
	Month            int    `json:"month" binding:"required"`
	Day              int    `json:"day" binding:"required"`
	Year             int    `json:"year"`
	NotifyDaysBefore int    `json:"notifyDaysBefore"`
	RemindersEnabled *bool  `json:"remindersEnabled"`
	ImageURL         string `json:"imageUrl"`
}

func (r birthdayRequest) toModel(userID string) models.Birthday {
	// Reminders default to enabled unless the client disables them.
	enabled := true
	if r.RemindersEnabled != nil {
		enabled = *r.RemindersEnabled
	}
	return models.Birthday{
		UserID:           userID,
		Name:             r.Name,
		Month:            r.Month,
		Day:              r.Day,
		Year:             r.Year,
		NotifyDaysBefore: r.NotifyDaysBefore,
		RemindersEnabled: enabled,
		ImageURL:         r.ImageURL,
	}
}

// CreateBirthdayHandler handles POST /api/birthdays.
func (h *BirthdayHandler) CreateBirthdayHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req birthdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req.toModel(userID))
	if err != nil {
		logger.Error("Failed to create birthday record", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBirthdaysHandler handles GET /api/birthdays.
func (h *BirthdayHandler) ListBirthdaysHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	birthdays, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list birthday records", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, birthdays)
}

// GetBirthdayHandler handles GET /api/birthdays/:id.
func (h *BirthdayHandler) GetBirthdayHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateBirthdayHandler handles PUT /api/birthdays/:id.
func (h *BirthdayHandler) UpdateBirthdayHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req birthdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.toModel(userID)
	record.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), userID, record)
	if err != nil {
		logger.Error("Failed to update birthday record", zap.String("id", record.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBirthdayHandler handles DELETE /api/birthdays/:id.
func (h *BirthdayHandler) DeleteBirthdayHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), userID, id); err != nil {
		logger.Error("Failed to delete birthday record", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Birthday record deleted"})
}
