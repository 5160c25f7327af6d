// internal/domain/reorder/resolver.go
package reorder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/your-org/catering-backend/internal/domain/cart"
	"github.com/your-org/catering-backend/internal/domain/contact"
	"github.com/your-org/catering-backend/internal/infrastructure/crm"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// feeLineMarker identifies fee pseudo-lines the CRM stores alongside real
// products; they are not reorderable.
const feeLineMarker = "delivery fee"

// OrderSource provides a contact's historical orders. The CRM gateway client
// satisfies this; tests use a fake.
type OrderSource interface {
	GetOrdersByContactID(ctx context.Context, contactID string) []crm.Order
}

// Resolved is a historical order reconciled against live delivery state,
// ready to load into a session cart.
type Resolved struct {
	OrderID         string          `json:"order_id"`
	Items           []cart.LineItem `json:"items"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryDate    string          `json:"delivery_date"`
	DeliveryTime    string          `json:"delivery_time"`
	Total           int64           `json:"total"` // cents, recomputed from items
}

// Resolver reconciles historical orders into reorderable carts
type Resolver struct {
	source OrderSource
}

// NewResolver creates a new reorder resolver
func NewResolver(source OrderSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve locates a historical order, drops fee pseudo-lines, applies live
// delivery-detail overrides, and recomputes the total from the surviving
// lines. A missing order yields ErrNotFound with an empty item set rather
// than an abort.
func (r *Resolver) Resolve(ctx context.Context, contactID, orderID string, live *contact.DeliveryDetails) (*Resolved, error) {
	orders := r.source.GetOrdersByContactID(ctx, contactID)

	var found *crm.Order
	for i := range orders {
		if orders[i].ID == orderID || orders[i].OrderNumber == orderID {
			found = &orders[i]
			break
		}
	}
	if found == nil {
		return &Resolved{OrderID: orderID, Items: []cart.LineItem{}},
			fmt.Errorf("order %s: %w", orderID, apperrors.ErrNotFound)
	}

	resolved := &Resolved{
		OrderID:         found.ID,
		Items:           reorderableLines(found.Items),
		DeliveryAddress: found.DeliveryAddress,
		DeliveryDate:    found.DeliveryDate,
		DeliveryTime:    found.DeliveryTime,
	}

	// Live delivery details take precedence over the stored ones
	if live != nil {
		if live.Address != "" {
			resolved.DeliveryAddress = live.Address
		}
		if live.Date != "" {
			resolved.DeliveryDate = live.Date
		}
		if live.Time != "" {
			resolved.DeliveryTime = live.Time
		}
	}

	for _, item := range resolved.Items {
		resolved.Total += item.UnitPrice * int64(item.Quantity)
	}
	return resolved, nil
}

// reorderableLines converts historical lines to cart lines, dropping fee
// pseudo-lines and anything without a positive quantity.
func reorderableLines(lines []crm.OrderLine) []cart.LineItem {
	items := make([]cart.LineItem, 0, len(lines))
	now := time.Now().UTC()
	for _, line := range lines {
		if isFeeLine(line.Name) || line.Quantity <= 0 {
			continue
		}
		items = append(items, cart.LineItem{
			ID:        slugID(line.Name),
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			AddedAt:   now,
		})
	}
	return items
}

func isFeeLine(name string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(name)), feeLineMarker)
}

func slugID(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
