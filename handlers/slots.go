package handlers

import (
	"net/http"
	"time"

	"fitbook/models"
	"fitbook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// SlotHandler exposes trainer schedule management endpoints.
type SlotHandler struct {
	Svc scheduling.SlotService
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(svc scheduling.SlotService) *SlotHandler {
	return &SlotHandler{Svc: svc}
}

// CreateSlots publishes a slot, optionally expanded over a recurrence.
func (h *SlotHandler) CreateSlots(c *gin.Context) {
	var input struct {
		models.SlotInput
		Recurrence string `json:"recurrence"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slots, err := h.Svc.CreateSlots(c.Request.Context(), input.SlotInput, input.Recurrence)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slots": slots})
}

// GetSchedule lists a trainer's published slots.
func (h *SlotHandler) GetSchedule(c *gin.Context) {
	trainerID := c.Param("trainerId")
	slots, err := h.Svc.Schedule(c.Request.Context(), trainerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// DeleteSlot removes a slot permanently.
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	if err := h.Svc.DeleteSlot(c.Request.Context(), c.Param("slotId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot deleted"})
}

// SweepExpired removes stale unbooked slots on demand (the daily cron runs
// the same operation).
func (h *SlotHandler) SweepExpired(c *gin.Context) {
	removed, err := h.Svc.DeleteExpired(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
