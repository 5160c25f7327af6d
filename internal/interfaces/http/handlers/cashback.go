// internal/interfaces/http/handlers/cashback.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/catering-backend/internal/domain/cashback"
	"github.com/your-org/catering-backend/internal/interfaces/http/middleware"
	"github.com/your-org/catering-backend/internal/pkg/money"
)

// CashbackHandler handles cashback balance and history endpoints
type CashbackHandler struct {
	cashbackService *cashback.Service
}

// NewCashbackHandler creates a new cashback handler
func NewCashbackHandler(cashbackService *cashback.Service) *CashbackHandler {
	return &CashbackHandler{
		cashbackService: cashbackService,
	}
}

// GetBalance handles GET /cashback/balance
func (h *CashbackHandler) GetBalance(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	balance, err := h.cashbackService.GetBalance(c.Request.Context(), contactID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cashback balance",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Balance retrieved successfully",
		"data": gin.H{
			"balance":           balance,
			"balance_formatted": money.Format(balance),
		},
	})
}

// GetHistory handles GET /cashback/history?limit=N
func (h *CashbackHandler) GetHistory(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	history, err := h.cashbackService.GetHistory(c.Request.Context(), contactID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cashback history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "History retrieved successfully",
		"data":    history,
	})
}
