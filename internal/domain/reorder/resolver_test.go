// internal/domain/reorder/resolver_test.go
package reorder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/catering-backend/internal/domain/contact"
	"github.com/your-org/catering-backend/internal/infrastructure/crm"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

type fakeSource struct {
	orders []crm.Order
}

func (f *fakeSource) GetOrdersByContactID(_ context.Context, _ string) []crm.Order {
	return f.orders
}

func historicalOrder() crm.Order {
	return crm.Order{
		ID:          "ord-1",
		OrderNumber: "CAT-20250101-000001",
		ContactID:   "c-1",
		Items: []crm.OrderLine{
			{Name: "Italian Sub Platter", Quantity: 2, UnitPrice: 8999},
			{Name: "Delivery Fee", Quantity: 1, UnitPrice: 1500},
		},
		Total:           20938,
		DeliveryAddress: "1 Main St",
		DeliveryDate:    "2025-01-05",
		DeliveryTime:    "11:30",
	}
}

func TestResolveFiltersFeeLines(t *testing.T) {
	resolver := NewResolver(&fakeSource{orders: []crm.Order{historicalOrder()}})

	resolved, err := resolver.Resolve(context.Background(), "c-1", "ord-1", nil)
	require.NoError(t, err)

	require.Len(t, resolved.Items, 1)
	assert.Equal(t, "Italian Sub Platter", resolved.Items[0].Name)
	assert.Equal(t, 2, resolved.Items[0].Quantity)
}

func TestResolveFeeFilterIgnoresCasingAndWhitespace(t *testing.T) {
	order := historicalOrder()
	order.Items = []crm.OrderLine{
		{Name: "Italian Sub Platter", Quantity: 2, UnitPrice: 8999},
		{Name: "DELIVERY FEE", Quantity: 1, UnitPrice: 1500},
		{Name: "  delivery fee  ", Quantity: 1, UnitPrice: 1500},
		{Name: "Rush Delivery Fee", Quantity: 1, UnitPrice: 2500},
	}
	resolver := NewResolver(&fakeSource{orders: []crm.Order{order}})

	resolved, err := resolver.Resolve(context.Background(), "c-1", "ord-1", nil)
	require.NoError(t, err)
	require.Len(t, resolved.Items, 1)
	assert.Equal(t, "Italian Sub Platter", resolved.Items[0].Name)
}

func TestResolveRecomputesTotalFromFilteredItems(t *testing.T) {
	resolver := NewResolver(&fakeSource{orders: []crm.Order{historicalOrder()}})

	resolved, err := resolver.Resolve(context.Background(), "c-1", "ord-1", nil)
	require.NoError(t, err)

	// 2 × 89.99, not the stored 209.38 (which included tax and the fee)
	assert.Equal(t, int64(17998), resolved.Total)
}

func TestResolveLiveDetailsTakePrecedence(t *testing.T) {
	resolver := NewResolver(&fakeSource{orders: []crm.Order{historicalOrder()}})
	live := &contact.DeliveryDetails{
		Address: "99 New Ave",
		Date:    "2025-02-10",
		Time:    "13:00",
	}

	resolved, err := resolver.Resolve(context.Background(), "c-1", "ord-1", live)
	require.NoError(t, err)
	assert.Equal(t, "99 New Ave", resolved.DeliveryAddress)
	assert.Equal(t, "2025-02-10", resolved.DeliveryDate)
	assert.Equal(t, "13:00", resolved.DeliveryTime)
}

func TestResolveFallsBackToHistoricalDetails(t *testing.T) {
	resolver := NewResolver(&fakeSource{orders: []crm.Order{historicalOrder()}})

	// Partial live details: only provided fields override
	live := &contact.DeliveryDetails{Date: "2025-02-10"}
	resolved, err := resolver.Resolve(context.Background(), "c-1", "ord-1", live)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", resolved.DeliveryAddress)
	assert.Equal(t, "2025-02-10", resolved.DeliveryDate)
	assert.Equal(t, "11:30", resolved.DeliveryTime)
}

func TestResolveUnknownOrderReportsNotFound(t *testing.T) {
	resolver := NewResolver(&fakeSource{orders: []crm.Order{historicalOrder()}})

	resolved, err := resolver.Resolve(context.Background(), "c-1", "ord-missing", nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NotNil(t, resolved)
	assert.Empty(t, resolved.Items)
}

func TestResolveMatchesByOrderNumber(t *testing.T) {
	resolver := NewResolver(&fakeSource{orders: []crm.Order{historicalOrder()}})

	resolved, err := resolver.Resolve(context.Background(), "c-1", "CAT-20250101-000001", nil)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", resolved.OrderID)
}
