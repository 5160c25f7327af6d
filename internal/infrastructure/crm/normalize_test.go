// internal/infrastructure/crm/normalize_test.go
package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{"id":"ord-1","order_number":"CAT-20250101-000001","contact_id":"c-1",
	"items":[{"name":"Italian Sub Platter - Large Tray","quantity":2,"unit_price":8999}],
	"total":20938,"delivery_address":"1 Main St","delivery_date":"2025-01-05","delivery_time":"11:30"}`

func TestNormalizeOrdersShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare array", `[` + orderJSON + `]`},
		{"data array", `{"data":[` + orderJSON + `]}`},
		{"data.orders", `{"data":{"orders":[` + orderJSON + `]}}`},
		{"data.data", `{"data":{"data":[` + orderJSON + `]}}`},
		{"top-level orders", `{"orders":[` + orderJSON + `]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := NormalizeOrders([]byte(tt.raw))
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, "ord-1", orders[0].ID)
			require.Len(t, orders[0].Items, 1)
			assert.Equal(t, int64(8999), orders[0].Items[0].UnitPrice)
		})
	}
}

func TestNormalizeOrdersEmptyVariants(t *testing.T) {
	for _, raw := range []string{`[]`, `{"data":[]}`, `{"data":{"orders":[]}}`, `{}`, `{"data":null}`} {
		orders, err := NormalizeOrders([]byte(raw))
		require.NoError(t, err, "raw=%s", raw)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	}
}

func TestNormalizeOrdersGarbage(t *testing.T) {
	_, err := NormalizeOrders([]byte(`not json at all`))
	assert.Error(t, err)
}

func TestNormalizeOrdersNilItemsBecomeEmpty(t *testing.T) {
	orders, err := NormalizeOrders([]byte(`[{"id":"ord-2"}]`))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.NotNil(t, orders[0].Items)
}
