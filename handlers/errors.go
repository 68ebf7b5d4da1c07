package handlers

import (
	"errors"
	"net/http"

	"fitbook/services/auth"
	"fitbook/services/booking"
	"fitbook/services/scheduling"
	"fitbook/services/trainer"
	"fitbook/services/wallet"
	"fitbook/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses and writes the standard
// error envelope.
func respondError(c *gin.Context, err error) {
	var conflict *scheduling.TimeConflictError

	switch {
	case errors.Is(err, scheduling.ErrSlotNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, wallet.ErrWalletNotFound),
		errors.Is(err, trainer.ErrTrainerNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())

	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "schedule conflict", err.Error())

	case errors.Is(err, booking.ErrInvalidState):
		utils.JSONError(c, http.StatusConflict, "invalid state", err.Error())

	case errors.Is(err, scheduling.ErrInvalidRange),
		errors.Is(err, scheduling.ErrMinimumDuration),
		errors.Is(err, scheduling.ErrInvalidPrice),
		errors.Is(err, booking.ErrMissingAmount),
		errors.Is(err, booking.ErrMissingPaymentIntent),
		errors.Is(err, wallet.ErrInvalidAmount):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())

	case errors.Is(err, booking.ErrNotYetCompleted),
		errors.Is(err, booking.ErrEditWindowExpired):
		utils.JSONError(c, http.StatusUnprocessableEntity, "prescription rejected", err.Error())

	case errors.Is(err, wallet.ErrInsufficientBalance):
		utils.JSONError(c, http.StatusUnprocessableEntity, "insufficient balance", err.Error())

	case errors.Is(err, booking.ErrRefundFailed):
		utils.JSONError(c, http.StatusBadGateway, "refund failed", err.Error())

	case errors.Is(err, auth.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "email taken", err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidOTP):
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())

	case errors.Is(err, auth.ErrAccountBlocked):
		utils.JSONError(c, http.StatusForbidden, "account blocked", err.Error())

	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
