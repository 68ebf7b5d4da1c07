package handlers

import (
	"net/http"

	"fitbook/services/wallet"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes trainer wallet endpoints.
type WalletHandler struct {
	Svc wallet.Service
}

// NewWalletHandler constructs a WalletHandler.
func NewWalletHandler(svc wallet.Service) *WalletHandler {
	return &WalletHandler{Svc: svc}
}

// GetWallet returns the trainer's balance and transaction history.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	w, err := h.Svc.Get(c.Request.Context(), c.Param("trainerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": w})
}

// Withdraw debits the trainer's wallet.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	w, err := h.Svc.Withdraw(c.Request.Context(), c.Param("trainerId"), input.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": w})
}
