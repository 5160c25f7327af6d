// internal/interfaces/http/handlers/orders.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/catering-backend/internal/domain/cart"
	"github.com/your-org/catering-backend/internal/domain/contact"
	"github.com/your-org/catering-backend/internal/domain/reorder"
	"github.com/your-org/catering-backend/internal/infrastructure/crm"
	"github.com/your-org/catering-backend/internal/interfaces/http/middleware"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// ordersCacheTTL keeps history snappy without hammering the CRM
const ordersCacheTTL = 2 * time.Minute

// OrderHandler handles order history and reorder endpoints
type OrderHandler struct {
	crmClient      *crm.Client
	resolver       *reorder.Resolver
	cartService    *cart.Service
	contactService *contact.Service
	redisClient    *redis.Client
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(crmClient *crm.Client, cartService *cart.Service,
	contactService *contact.Service, redisClient *redis.Client) *OrderHandler {
	return &OrderHandler{
		crmClient:      crmClient,
		resolver:       reorder.NewResolver(crmClient),
		cartService:    cartService,
		contactService: contactService,
		redisClient:    redisClient,
	}
}

// ListOrders handles GET /orders. A failing CRM yields an empty history, not
// an error, so the app keeps working.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("orders:contact:%s", contactID)

	var orders []crm.Order
	if data, err := h.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		if json.Unmarshal([]byte(data), &orders) == nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Orders retrieved successfully",
				"data":    orders,
			})
			return
		}
	}

	orders = h.crmClient.GetOrdersByContactID(ctx, contactID)
	if len(orders) > 0 {
		if data, err := json.Marshal(orders); err == nil {
			h.redisClient.Set(ctx, cacheKey, data, ordersCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// Reorder handles POST /orders/:id/reorder. The historical order's lines
// replace the session cart; current saved delivery details override the
// order's stored ones.
func (h *OrderHandler) Reorder(c *gin.Context) {
	contactID, ok := middleware.GetContactIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	orderID := c.Param("id")
	ctx := c.Request.Context()

	// Saved delivery details are optional here
	live, err := h.contactService.GetDeliveryDetails(ctx, contactID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		live = nil
	}

	resolved, err := h.resolver.Resolve(ctx, contactID, orderID, live)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
				"data":  resolved,
			})
			return
		}
		respondError(c, err)
		return
	}

	sessionID := getOrCreateSessionID(c)
	cartResponse, err := h.cartService.ReplaceItems(ctx, sessionID, resolved.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order loaded into cart",
		"data": gin.H{
			"order": resolved,
			"cart":  cartResponse,
		},
	})
}
