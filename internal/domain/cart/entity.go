// internal/domain/cart/entity.go
package cart

import (
	"fmt"
	"time"

	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// LineItem represents one line in an ordering-session cart.
// Quantity is always > 0; a line reduced to zero is removed, not retained.
type LineItem struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	UnitPrice           int64     `json:"unit_price"` // cents
	Quantity            int       `json:"quantity"`
	ImageURL            string    `json:"image_url,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	AddedAt             time.Time `json:"added_at"`
}

// SessionCart represents the cart for one ordering session (stored in Redis).
// Items keep insertion order; IDs are unique within the cart.
type SessionCart struct {
	SessionID string     `json:"session_id"`
	ContactID string     `json:"contact_id,omitempty"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Totals represents calculated cart totals (all cents)
type Totals struct {
	ItemCount        int   `json:"item_count"`     // number of unique lines
	TotalQuantity    int   `json:"total_quantity"` // sum of all quantities
	Subtotal         int64 `json:"subtotal"`
	Tax              int64 `json:"tax"`
	DeliveryFee      int64 `json:"delivery_fee"`
	CashbackDiscount int64 `json:"cashback_discount"`
	Total            int64 `json:"total"`
}

// AddItem merges an incoming item into the cart. An existing line with the
// same id accumulates quantity; its special instructions are replaced only
// when the incoming value is non-empty. Otherwise the item is appended.
func (c *SessionCart) AddItem(item LineItem) error {
	if item.ID == "" {
		return fmt.Errorf("line item id is required: %w", apperrors.ErrInvalidInput)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d: %w", item.Quantity, apperrors.ErrInvalidInput)
	}
	if item.UnitPrice < 0 {
		return fmt.Errorf("unit price cannot be negative: %w", apperrors.ErrInvalidInput)
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			if item.SpecialInstructions != "" {
				c.Items[i].SpecialInstructions = item.SpecialInstructions
			}
			return nil
		}
	}

	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}
	c.Items = append(c.Items, item)
	return nil
}

// UpdateQuantity sets a line's quantity verbatim. Zero or negative removes
// the line entirely. Updating an unknown id is a no-op.
func (c *SessionCart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes a line by id. Removing a nonexistent id is a no-op.
func (c *SessionCart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally
func (c *SessionCart) Clear() {
	c.Items = nil
}
