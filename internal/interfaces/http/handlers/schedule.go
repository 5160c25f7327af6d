// internal/interfaces/http/handlers/schedule.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/catering-backend/internal/domain/schedule"
	"github.com/your-org/catering-backend/internal/interfaces/http/middleware"
)

// ScheduleHandler handles standing-order endpoints
type ScheduleHandler struct {
	scheduleService *schedule.Service
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// Create handles POST /schedules, snapshotting the current cart
func (h *ScheduleHandler) Create(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req schedule.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := getOrCreateSessionID(c)
	order, err := h.scheduleService.Create(c.Request.Context(), contactID, sessionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order scheduled successfully",
		"data":    order,
	})
}

// List handles GET /schedules
func (h *ScheduleHandler) List(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	orders, err := h.scheduleService.List(c.Request.Context(), contactID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve schedules",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Schedules retrieved successfully",
		"data":    orders,
	})
}

// Cancel handles DELETE /schedules/:id
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	if err := h.scheduleService.Cancel(c.Request.Context(), contactID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Schedule cancelled successfully",
	})
}
