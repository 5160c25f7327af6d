// internal/domain/pricing/recommendation_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

func TestRecommendRejectsNonPositiveGuestCount(t *testing.T) {
	for _, guests := range []int{0, -1, -100} {
		_, err := Recommend(guests)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "guests=%d", guests)
	}
}

func TestRecommendStrategyBoundary(t *testing.T) {
	boxed, err := Recommend(14)
	require.NoError(t, err)
	assert.Equal(t, ApproachBoxed, boxed.Approach)

	tray, err := Recommend(15)
	require.NoError(t, err)
	assert.Equal(t, ApproachTray, tray.Approach)
}

func TestRecommendTrayCounts(t *testing.T) {
	tests := []struct {
		guests       int
		largeTrays   int
		regularTrays int
	}{
		{15, 1, 1},  // 15 = 1 large + ceil(3/7)
		{24, 2, 0},  // exact multiple of 12
		{25, 2, 1},  // remaining 1 -> one regular tray
		{19, 1, 1},  // remaining 7 exactly
		{20, 1, 2},  // remaining 8 -> two regular trays
		{100, 8, 1}, // remaining 4
	}

	for _, tt := range tests {
		rec, err := Recommend(tt.guests)
		require.NoError(t, err)

		var large, regular int
		for _, item := range rec.MainItems {
			switch item.Name {
			case LargeTray.Name:
				large = item.Quantity
			case RegularTray.Name:
				regular = item.Quantity
			}
		}
		assert.Equal(t, tt.largeTrays, large, "guests=%d large", tt.guests)
		assert.Equal(t, tt.regularTrays, regular, "guests=%d regular", tt.guests)
	}
}

// Tray counts for 12 and 13 guests follow the tray math even though those
// counts fall below the boxed/tray threshold; verify the helper directly.
func TestTrayMathBelowThreshold(t *testing.T) {
	rec := recommendTrays(12)
	require.Len(t, rec.MainItems, 1)
	assert.Equal(t, LargeTray.Name, rec.MainItems[0].Name)
	assert.Equal(t, 1, rec.MainItems[0].Quantity)

	rec = recommendTrays(13)
	require.Len(t, rec.MainItems, 2)
	assert.Equal(t, 1, rec.MainItems[0].Quantity) // 1 large
	assert.Equal(t, 1, rec.MainItems[1].Quantity) // remaining 1 -> 1 regular
}

func TestRecommendDessertBoundary(t *testing.T) {
	// Dessert threshold sits inside the boxed range, where desserts are never
	// added; the tray math is where the threshold actually bites.
	nine := recommendTrays(9)
	assert.Empty(t, nine.Desserts)

	ten := recommendTrays(10)
	require.Len(t, ten.Desserts, 1)
	assert.Equal(t, 1, ten.Desserts[0].Quantity)

	boxed, err := Recommend(12)
	require.NoError(t, err)
	assert.Empty(t, boxed.Desserts, "boxed lunches are self-contained")
	assert.Empty(t, boxed.Sides)
}

func TestRecommendSaladQuantity(t *testing.T) {
	tests := []struct {
		guests int
		salads int
	}{
		{15, 1}, // floor(15/20)=0, floored at 1
		{20, 1},
		{40, 2},
		{59, 2},
		{60, 3},
	}

	for _, tt := range tests {
		rec, err := Recommend(tt.guests)
		require.NoError(t, err)

		found := 0
		for _, item := range rec.Sides {
			if item.Name == GardenSaladTray.Name {
				found = item.Quantity
			}
		}
		assert.Equal(t, tt.salads, found, "guests=%d", tt.guests)
	}
}

func TestRecommendPackQuantities(t *testing.T) {
	rec, err := Recommend(17)
	require.NoError(t, err)

	// ceil(17/8) = 3 packs of chips and of drinks
	var chips int
	for _, item := range rec.Sides {
		if item.Name == ChipsPack.Name {
			chips = item.Quantity
		}
	}
	assert.Equal(t, 3, chips)
	require.Len(t, rec.Drinks, 1)
	assert.Equal(t, 3, rec.Drinks[0].Quantity)
}

func TestRecommendBoxedOnePerGuest(t *testing.T) {
	rec, err := Recommend(11)
	require.NoError(t, err)

	require.Len(t, rec.MainItems, 1)
	assert.Equal(t, BoxedLunch.Name, rec.MainItems[0].Name)
	assert.Equal(t, 11, rec.MainItems[0].Quantity)
	require.Len(t, rec.Drinks, 1)
	assert.Equal(t, 2, rec.Drinks[0].Quantity) // ceil(11/8)
}

func TestRecommendTotalsConsistency(t *testing.T) {
	for guests := 1; guests <= 120; guests++ {
		rec, err := Recommend(guests)
		require.NoError(t, err)

		var subtotal int64
		for _, group := range [][]RecommendationItem{rec.MainItems, rec.Sides, rec.Drinks, rec.Desserts} {
			for _, item := range group {
				assert.GreaterOrEqual(t, item.Quantity, 0)
				assert.Equal(t, int64(item.Quantity)*item.UnitPrice, item.TotalPrice,
					"guests=%d item=%s", guests, item.Name)
				subtotal += item.TotalPrice
			}
		}
		assert.Equal(t, subtotal, rec.Subtotal, "guests=%d", guests)
	}
}

func TestRecommendEstimatedRangeScaling(t *testing.T) {
	tray, err := Recommend(30)
	require.NoError(t, err)
	assert.Equal(t, (tray.Subtotal*90+50)/100, tray.Estimated.Min)
	assert.Equal(t, (tray.Subtotal*115+50)/100, tray.Estimated.Max)

	boxed, err := Recommend(8)
	require.NoError(t, err)
	assert.Equal(t, (boxed.Subtotal*95+50)/100, boxed.Estimated.Min)
	assert.Equal(t, (boxed.Subtotal*110+50)/100, boxed.Estimated.Max)
}

// Within a single strategy the subtotal never decreases as guests grow. The
// boxed->tray switch at 15 is allowed to reduce cost and is not asserted.
func TestRecommendMonotonicWithinStrategy(t *testing.T) {
	var prev int64
	for guests := 1; guests < TrayThreshold; guests++ {
		rec, err := Recommend(guests)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rec.Subtotal, prev, "boxed guests=%d", guests)
		prev = rec.Subtotal
	}

	prev = 0
	for guests := TrayThreshold; guests <= 200; guests++ {
		rec, err := Recommend(guests)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rec.Subtotal, prev, "tray guests=%d", guests)
		prev = rec.Subtotal
	}
}
