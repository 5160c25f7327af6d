// internal/domain/pricing/catalog.go
package pricing

// CatalogEntry describes one item in the static catering price table.
// Prices are cents. This table is intentionally independent of the live menu
// catalog; the dev seed starts them aligned but nothing re-syncs them.
type CatalogEntry struct {
	Name        string
	UnitPrice   int64
	ServesLabel string
}

// Fixed portioning rules for the recommendation math.
const (
	LargeTrayServes  = 12 // guests per large tray
	RegularTrayServe = 7  // guests per regular tray
	PackSize         = 8  // chips / drinks per pack
	SaladPerGuests   = 20 // one salad tray per 20 guests
	DessertPerGuests = 12 // one dessert tray per 12 guests

	// TrayThreshold is the guest count at which the recommendation switches
	// from boxed lunches to shared trays. Fixed business rule.
	TrayThreshold = 15

	// DessertThreshold is the guest count at which a dessert tray is added.
	DessertThreshold = 10
)

// Static price table
var (
	LargeTray = CatalogEntry{
		Name:        "Italian Sub Platter - Large Tray",
		UnitPrice:   8999,
		ServesLabel: "Serves 10-12",
	}
	// Priced so that one large tray never costs less than the two regular
	// trays it replaces; bundle cost stays non-decreasing in guest count.
	RegularTray = CatalogEntry{
		Name:        "Italian Sub Platter - Regular Tray",
		UnitPrice:   4499,
		ServesLabel: "Serves 6-7",
	}
	BoxedLunch = CatalogEntry{
		Name:        "Boxed Lunch",
		UnitPrice:   1349,
		ServesLabel: "Serves 1",
	}
	GardenSaladTray = CatalogEntry{
		Name:        "Garden Salad Tray",
		UnitPrice:   3999,
		ServesLabel: "Serves 15-20",
	}
	ChipsPack = CatalogEntry{
		Name:        "Assorted Chips (8-Pack)",
		UnitPrice:   1200,
		ServesLabel: "Serves 8",
	}
	DrinksPack = CatalogEntry{
		Name:        "Bottled Drinks (8-Pack)",
		UnitPrice:   1599,
		ServesLabel: "Serves 8",
	}
	DessertTray = CatalogEntry{
		Name:        "Cookie & Brownie Tray",
		UnitPrice:   3499,
		ServesLabel: "Serves 10-12",
	}
)
