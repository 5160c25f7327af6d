// internal/interfaces/http/handlers/profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/catering-backend/internal/domain/contact"
	"github.com/your-org/catering-backend/internal/interfaces/http/middleware"
)

// ProfileHandler handles contact profile and delivery detail endpoints
type ProfileHandler struct {
	contactService *contact.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(contactService *contact.Service) *ProfileHandler {
	return &ProfileHandler{
		contactService: contactService,
	}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	profile, err := h.contactService.GetProfile(c.Request.Context(), contactID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.contactService.UpdateProfile(c.Request.Context(), contactID, fields); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
	})
}

// SaveDeliveryDetails handles PUT /profile/delivery-details
func (h *ProfileHandler) SaveDeliveryDetails(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var details contact.DeliveryDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.contactService.SaveDeliveryDetails(c.Request.Context(), contactID, &details); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery details saved successfully",
		"data":    details,
	})
}

// GetDeliveryDetails handles GET /profile/delivery-details
func (h *ProfileHandler) GetDeliveryDetails(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	details, err := h.contactService.GetDeliveryDetails(c.Request.Context(), contactID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery details retrieved successfully",
		"data":    details,
	})
}
