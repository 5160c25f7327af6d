// internal/domain/menu/entity.go
package menu

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// Category represents a menu category (platters, boxed lunches, sides...)
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:100" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:100" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Items []Item `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// Item represents a menu item in the live catalog
type Item struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // cents
	ServesMin   *int           `json:"serves_min"`
	ServesMax   *int           `json:"serves_max"`
	ImageURL    string         `gorm:"size:512" json:"image_url"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Category) TableName() string { return "menu_categories" }
func (Item) TableName() string     { return "menu_items" }

// Validate enforces catalog invariants before persistence
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item name is required: %w", apperrors.ErrInvalidInput)
	}
	if i.Price < 0 {
		return fmt.Errorf("item price cannot be negative: %w", apperrors.ErrInvalidInput)
	}
	if i.ServesMin != nil && i.ServesMax != nil && *i.ServesMin > *i.ServesMax {
		return fmt.Errorf("serves_min exceeds serves_max: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

// ServesLabel renders the serving range for display
func (i *Item) ServesLabel() string {
	switch {
	case i.ServesMin != nil && i.ServesMax != nil:
		return fmt.Sprintf("Serves %d-%d", *i.ServesMin, *i.ServesMax)
	case i.ServesMax != nil:
		return fmt.Sprintf("Serves up to %d", *i.ServesMax)
	case i.ServesMin != nil:
		return fmt.Sprintf("Serves %d+", *i.ServesMin)
	default:
		return ""
	}
}
