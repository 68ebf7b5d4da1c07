package handlers

import (
	"net/http"

	notificationRepo "fitbook/database/repository/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes per-receiver notification lists.
type NotificationHandler struct {
	Repo notificationRepo.Repository
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(repo notificationRepo.Repository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// List returns the receiver's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	entries, err := h.Repo.ListByReceiver(c.Request.Context(), c.Param("receiverId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": entries})
}

// Clear drops the receiver's notification list.
func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.Repo.Clear(c.Request.Context(), c.Param("receiverId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notifications cleared"})
}
