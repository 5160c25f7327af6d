// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/domain/contact"
	"github.com/your-org/catering-backend/internal/pkg/auth"
)

// AuthHandler handles OTP login endpoints
type AuthHandler struct {
	contactService *contact.Service
	jwtManager     *auth.JWTManager
	config         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(contactService *contact.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		contactService: contactService,
		jwtManager:     auth.NewJWTManager(cfg),
		config:         cfg,
	}
}

// RequestOTPRequest carries the phone number or email to verify
type RequestOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

// VerifyOTPRequest carries the identifier and submitted code
type VerifyOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

// RefreshTokenRequest carries a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RequestOTP handles POST /auth/request-otp
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.contactService.RequestOTP(c.Request.Context(), req.Identifier); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification code sent",
	})
}

// VerifyOTP handles POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.contactService.VerifyOTP(c.Request.Context(), req.Identifier, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(profile.ContactID, req.Identifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	refreshToken, err := h.jwtManager.GenerateRefreshToken(profile.ContactID, req.Identifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification successful",
		"data": gin.H{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"profile":       profile,
		},
	})
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	claims, err := h.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(claims.ContactID, claims.Identifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	refreshToken, err := h.jwtManager.GenerateRefreshToken(claims.ContactID, claims.Identifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"data": gin.H{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	})
}
