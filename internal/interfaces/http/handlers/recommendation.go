// internal/interfaces/http/handlers/recommendation.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/catering-backend/internal/domain/cart"
	"github.com/your-org/catering-backend/internal/domain/pricing"
)

// RecommendationHandler handles guest-count recommendation endpoints
type RecommendationHandler struct {
	cartService *cart.Service
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(cartService *cart.Service) *RecommendationHandler {
	return &RecommendationHandler{
		cartService: cartService,
	}
}

// PopulateCartRequest asks for the recommended bundle to be loaded as a cart
type PopulateCartRequest struct {
	GuestCount int `json:"guest_count" binding:"required"`
}

// GetRecommendation handles GET /recommendations?guests=N
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'guests' must be a number",
		})
		return
	}

	recommendation, err := pricing.Recommend(guests)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recommendation generated successfully",
		"data":    recommendation,
	})
}

// PopulateCart handles POST /recommendations/populate-cart. The recommended
// bundle replaces the cart contents entirely.
func (h *RecommendationHandler) PopulateCart(c *gin.Context) {
	var req PopulateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	recommendation, err := pricing.Recommend(req.GuestCount)
	if err != nil {
		respondError(c, err)
		return
	}

	sessionID := getOrCreateSessionID(c)
	cartResponse, err := h.cartService.PopulateFromRecommendation(c.Request.Context(), sessionID, recommendation)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart populated from recommendation",
		"data": gin.H{
			"recommendation": recommendation,
			"cart":           cartResponse,
		},
	})
}
