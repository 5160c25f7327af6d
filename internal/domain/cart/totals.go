// internal/domain/cart/totals.go
package cart

import "github.com/your-org/catering-backend/internal/pkg/money"

// Rules holds the checkout pricing rules applied over a cart
type Rules struct {
	TaxRateBps  int64 // basis points, 800 = 8%
	DeliveryFee int64 // cents, charged on any non-empty cart
}

// DefaultRules matches the fixed business rules: 8% tax, $15 delivery fee.
var DefaultRules = Rules{TaxRateBps: 800, DeliveryFee: 1500}

// ComputeTotals derives the pricing breakdown for a set of lines. The
// cashback discount is capped at the merchandise subtotal, so the total never
// drops below tax plus delivery fee.
func ComputeTotals(items []LineItem, cashbackBalance int64, applyCashback bool, rules Rules) Totals {
	totals := Totals{ItemCount: len(items)}

	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.Subtotal += item.UnitPrice * int64(item.Quantity)
	}

	totals.Tax = money.Percent(totals.Subtotal, rules.TaxRateBps)
	if totals.Subtotal > 0 {
		totals.DeliveryFee = rules.DeliveryFee
	}
	if applyCashback {
		totals.CashbackDiscount = money.Min(cashbackBalance, totals.Subtotal)
	}
	totals.Total = totals.Subtotal + totals.Tax + totals.DeliveryFee - totals.CashbackDiscount

	return totals
}
