// internal/domain/pricing/recommendation.go
package pricing

import (
	"fmt"

	"github.com/your-org/catering-backend/internal/pkg/apperrors"
	"github.com/your-org/catering-backend/internal/pkg/money"
)

// Approach is the recommendation strategy chosen by guest count
type Approach string

const (
	ApproachTray  Approach = "tray"
	ApproachBoxed Approach = "boxed"
)

// RecommendationItem represents one recommended line in a catering bundle.
// TotalPrice is always recomputed as Quantity*UnitPrice, never stored
// independently.
type RecommendationItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	ServesLabel string `json:"serves_label"`
	UnitPrice   int64  `json:"unit_price"`  // cents
	TotalPrice  int64  `json:"total_price"` // cents, Quantity * UnitPrice
}

// EstimatedRange is the scaled min/max estimate around the subtotal. The
// bounds are scaled independently of the subtotal, so the subtotal is not
// guaranteed to fall inside them.
type EstimatedRange struct {
	Min int64 `json:"min"` // cents
	Max int64 `json:"max"` // cents
}

// CateringRecommendation is a guest-count-driven bundle of catalog items
type CateringRecommendation struct {
	Approach   Approach             `json:"approach"`
	MainItems  []RecommendationItem `json:"main_items"`
	Sides      []RecommendationItem `json:"sides"`
	Drinks     []RecommendationItem `json:"drinks"`
	Desserts   []RecommendationItem `json:"desserts"`
	Subtotal   int64                `json:"subtotal"` // cents
	Estimated  EstimatedRange       `json:"estimated_range"`
	GuestCount int                  `json:"guest_count"`
}

// Recommend computes a catering bundle for the given guest count. Fewer than
// 15 guests get individual boxed lunches; 15 and up get shared trays.
// Non-positive guest counts are rejected.
func Recommend(guestCount int) (*CateringRecommendation, error) {
	if guestCount <= 0 {
		return nil, fmt.Errorf("guest count must be a positive integer: %w", apperrors.ErrInvalidInput)
	}

	if guestCount < TrayThreshold {
		return recommendBoxed(guestCount), nil
	}
	return recommendTrays(guestCount), nil
}

func recommendTrays(guestCount int) *CateringRecommendation {
	rec := &CateringRecommendation{
		Approach:   ApproachTray,
		GuestCount: guestCount,
	}

	largeTrays := guestCount / LargeTrayServes
	remaining := guestCount - largeTrays*LargeTrayServes
	regularTrays := 0
	if remaining > 0 {
		regularTrays = ceilDiv(remaining, RegularTrayServe)
	}

	if largeTrays > 0 {
		rec.MainItems = append(rec.MainItems, newItem(LargeTray, largeTrays))
	}
	if regularTrays > 0 {
		rec.MainItems = append(rec.MainItems, newItem(RegularTray, regularTrays))
	}

	// Salad only makes sense at tray scale; one tray per 20 guests, at least one.
	if guestCount >= TrayThreshold {
		salads := guestCount / SaladPerGuests
		if salads < 1 {
			salads = 1
		}
		rec.Sides = append(rec.Sides, newItem(GardenSaladTray, salads))
	}

	rec.Sides = append(rec.Sides, newItem(ChipsPack, ceilDiv(guestCount, PackSize)))
	rec.Drinks = append(rec.Drinks, newItem(DrinksPack, ceilDiv(guestCount, PackSize)))

	if guestCount >= DessertThreshold {
		rec.Desserts = append(rec.Desserts, newItem(DessertTray, ceilDiv(guestCount, DessertPerGuests)))
	}

	rec.Subtotal = sumGroups(rec)
	rec.Estimated = EstimatedRange{
		Min: money.Scale(rec.Subtotal, 90),
		Max: money.Scale(rec.Subtotal, 115),
	}
	return rec
}

func recommendBoxed(guestCount int) *CateringRecommendation {
	rec := &CateringRecommendation{
		Approach:   ApproachBoxed,
		GuestCount: guestCount,
	}

	// One self-contained boxed lunch per guest; no sides or desserts.
	rec.MainItems = append(rec.MainItems, newItem(BoxedLunch, guestCount))
	rec.Drinks = append(rec.Drinks, newItem(DrinksPack, ceilDiv(guestCount, PackSize)))

	rec.Subtotal = sumGroups(rec)
	rec.Estimated = EstimatedRange{
		Min: money.Scale(rec.Subtotal, 95),
		Max: money.Scale(rec.Subtotal, 110),
	}
	return rec
}

func newItem(entry CatalogEntry, quantity int) RecommendationItem {
	return RecommendationItem{
		Name:        entry.Name,
		Quantity:    quantity,
		ServesLabel: entry.ServesLabel,
		UnitPrice:   entry.UnitPrice,
		TotalPrice:  entry.UnitPrice * int64(quantity),
	}
}

func sumGroups(rec *CateringRecommendation) int64 {
	var subtotal int64
	for _, group := range [][]RecommendationItem{rec.MainItems, rec.Sides, rec.Drinks, rec.Desserts} {
		for _, item := range group {
			subtotal += item.TotalPrice
		}
	}
	return subtotal
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
