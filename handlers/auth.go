package handlers

import (
	"net/http"

	"fitbook/services/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	Svc auth.Service
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type verifyInput struct {
	auth.RegisterInput
	OTP string `json:"otp" binding:"required"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser starts a user signup by mailing an OTP.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var input auth.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.RegisterUser(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyUser completes a user signup.
func (h *AuthHandler) VerifyUser(c *gin.Context) {
	var input verifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	user, tokens, err := h.Svc.VerifyUser(c.Request.Context(), input.RegisterInput, input.OTP)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "tokens": tokens})
}

// LoginUser authenticates a user.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	user, tokens, err := h.Svc.LoginUser(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "tokens": tokens})
}

// RegisterTrainer starts a trainer signup by mailing an OTP.
func (h *AuthHandler) RegisterTrainer(c *gin.Context) {
	var input auth.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.RegisterTrainer(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyTrainer completes a trainer signup.
func (h *AuthHandler) VerifyTrainer(c *gin.Context) {
	var input verifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	trainer, tokens, err := h.Svc.VerifyTrainer(c.Request.Context(), input.RegisterInput, input.OTP)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trainer": trainer, "tokens": tokens})
}

// LoginTrainer authenticates a trainer.
func (h *AuthHandler) LoginTrainer(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	trainer, tokens, err := h.Svc.LoginTrainer(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer": trainer, "tokens": tokens})
}
