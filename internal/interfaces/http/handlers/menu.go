// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/catering-backend/internal/domain/menu"
)

// MenuHandler handles menu catalog endpoints
type MenuHandler struct {
	menuService *menu.Service
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *menu.Service) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// ListCategories handles GET /menu/categories
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve menu categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// ListCategoryItems handles GET /menu/categories/:id/items
func (h *MenuHandler) ListCategoryItems(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID",
		})
		return
	}

	items, err := h.menuService.ListItemsByCategory(c.Request.Context(), uint(categoryID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve menu items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu items retrieved successfully",
		"data":    items,
	})
}

// GetItem handles GET /menu/items/:id
func (h *MenuHandler) GetItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), uint(itemID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item retrieved successfully",
		"data":    item,
	})
}
