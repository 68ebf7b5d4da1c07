package handlers

import (
	"net/http"

	"fitbook/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Svc booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// InitiateCheckout opens a hosted checkout session for a slot.
func (h *BookingHandler) InitiateCheckout(c *gin.Context) {
	var input struct {
		SlotID string `json:"slotId" binding:"required"`
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	co, err := h.Svc.InitiateCheckout(c.Request.Context(), input.SlotID, input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkoutId": co.ID})
}

// FinalizeBooking confirms the booking after a successful payment. Safe to
// retry; the original booking is returned.
func (h *BookingHandler) FinalizeBooking(c *gin.Context) {
	var input struct {
		SlotID     string `json:"slotId" binding:"required"`
		UserID     string `json:"userId" binding:"required"`
		CheckoutID string `json:"checkoutId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Svc.FinalizeBooking(c.Request.Context(), input.SlotID, input.UserID, input.CheckoutID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelBooking cancels a confirmed booking with a notice-based refund.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	res, err := h.Svc.CancelBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RecordCompletion stores the trainer's prescription and advances progress.
func (h *BookingHandler) RecordCompletion(c *gin.Context) {
	var input struct {
		Prescription string `json:"prescription" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Svc.RecordSessionCompletion(c.Request.Context(), c.Param("bookingId"), input.Prescription)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// UpdatePrescription amends a prescription within the edit window.
func (h *BookingHandler) UpdatePrescription(c *gin.Context) {
	var input struct {
		Prescription string `json:"prescription" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdatePrescription(c.Request.Context(), c.Param("bookingId"), input.Prescription); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "prescription updated"})
}

// UserBookings lists a user's bookings, newest first.
func (h *BookingHandler) UserBookings(c *gin.Context) {
	bookings, err := h.Svc.UserBookings(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// TrainerBookings lists a trainer's bookings, newest first.
func (h *BookingHandler) TrainerBookings(c *gin.Context) {
	bookings, err := h.Svc.TrainerBookings(c.Request.Context(), c.Param("trainerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
