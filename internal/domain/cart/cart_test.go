// internal/domain/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/catering-backend/internal/domain/pricing"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

func line(id string, price int64, qty int) LineItem {
	return LineItem{ID: id, Name: id, UnitPrice: price, Quantity: qty}
}

func TestAddItemMergesQuantities(t *testing.T) {
	c := &SessionCart{}
	require.NoError(t, c.AddItem(line("platter", 8999, 2)))
	require.NoError(t, c.AddItem(line("platter", 8999, 3)))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddItemKeepsInstructionsUnlessReplaced(t *testing.T) {
	c := &SessionCart{}
	first := line("platter", 8999, 1)
	first.SpecialInstructions = "no onions"
	require.NoError(t, c.AddItem(first))

	// Empty incoming instructions preserve the existing ones
	require.NoError(t, c.AddItem(line("platter", 8999, 1)))
	assert.Equal(t, "no onions", c.Items[0].SpecialInstructions)

	// Non-empty incoming instructions replace them
	third := line("platter", 8999, 1)
	third.SpecialInstructions = "extra napkins"
	require.NoError(t, c.AddItem(third))
	assert.Equal(t, "extra napkins", c.Items[0].SpecialInstructions)
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	c := &SessionCart{}
	assert.ErrorIs(t, c.AddItem(line("platter", 8999, -1)), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, c.AddItem(line("platter", 8999, 0)), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, c.AddItem(line("", 8999, 1)), apperrors.ErrInvalidInput)
	assert.Empty(t, c.Items, "failed adds must not mutate the cart")
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := &SessionCart{}
	require.NoError(t, c.AddItem(line("platter", 8999, 2)))
	require.NoError(t, c.AddItem(line("drinks", 1599, 1)))

	c.UpdateQuantity("platter", 0)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "drinks", c.Items[0].ID)

	totals := ComputeTotals(c.Items, 0, false, DefaultRules)
	assert.Equal(t, int64(1599), totals.Subtotal, "removed line excluded from totals")
}

func TestUpdateQuantitySetsVerbatim(t *testing.T) {
	c := &SessionCart{}
	require.NoError(t, c.AddItem(line("platter", 8999, 2)))

	c.UpdateQuantity("platter", 7)
	assert.Equal(t, 7, c.Items[0].Quantity, "set, not incremented")
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := &SessionCart{}
	require.NoError(t, c.AddItem(line("platter", 8999, 2)))

	c.RemoveItem("nonexistent")
	c.RemoveItem("nonexistent")
	require.Len(t, c.Items, 1)

	c.RemoveItem("platter")
	c.RemoveItem("platter")
	assert.Empty(t, c.Items)
}

func TestClearEmptiesCart(t *testing.T) {
	c := &SessionCart{}
	require.NoError(t, c.AddItem(line("platter", 8999, 2)))
	c.Clear()
	assert.Empty(t, c.Items)
}

func TestComputeTotalsCheckoutExample(t *testing.T) {
	items := []LineItem{line("platter", 8999, 2)}
	totals := ComputeTotals(items, 0, false, DefaultRules)

	assert.Equal(t, int64(17998), totals.Subtotal) // 179.98
	assert.Equal(t, int64(1440), totals.Tax)       // 14.3984 -> 14.40
	assert.Equal(t, int64(1500), totals.DeliveryFee)
	assert.Equal(t, int64(0), totals.CashbackDiscount)
	assert.Equal(t, int64(20938), totals.Total) // 209.38
}

func TestComputeTotalsCashbackCappedAtSubtotal(t *testing.T) {
	items := []LineItem{line("platter", 10000, 1)}
	totals := ComputeTotals(items, 15000, true, DefaultRules)

	assert.Equal(t, int64(10000), totals.CashbackDiscount, "capped at subtotal")
	// Total never drops below tax + delivery fee
	assert.Equal(t, totals.Tax+totals.DeliveryFee, totals.Total)
}

func TestComputeTotalsCashbackNotApplied(t *testing.T) {
	items := []LineItem{line("platter", 10000, 1)}
	totals := ComputeTotals(items, 15000, false, DefaultRules)
	assert.Equal(t, int64(0), totals.CashbackDiscount)
}

func TestComputeTotalsEmptyCartHasNoDeliveryFee(t *testing.T) {
	totals := ComputeTotals(nil, 5000, true, DefaultRules)
	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(0), totals.DeliveryFee)
	assert.Equal(t, int64(0), totals.CashbackDiscount)
	assert.Equal(t, int64(0), totals.Total)
}

func TestPopulateFromRecommendationIsFullReplace(t *testing.T) {
	rec, err := pricing.Recommend(20)
	require.NoError(t, err)

	c := &SessionCart{SessionID: "s1"}
	require.NoError(t, c.AddItem(line("stale-item", 100, 9)))

	// Mirror of Service.PopulateFromRecommendation without the Redis round trip
	c.Clear()
	for _, group := range [][]pricing.RecommendationItem{rec.MainItems, rec.Sides, rec.Drinks, rec.Desserts} {
		for _, item := range group {
			require.NoError(t, c.AddItem(LineItem{
				ID:        slugify(item.Name),
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			}))
		}
	}

	for _, item := range c.Items {
		assert.NotEqual(t, "stale-item", item.ID)
	}
	totals := ComputeTotals(c.Items, 0, false, DefaultRules)
	assert.Equal(t, rec.Subtotal, totals.Subtotal)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "italian-sub-platter-large-tray", slugify("Italian Sub Platter - Large Tray"))
	assert.Equal(t, "assorted-chips-8-pack", slugify("Assorted Chips (8-Pack)"))
}
