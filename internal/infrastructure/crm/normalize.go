// internal/infrastructure/crm/normalize.go
package crm

import (
	"encoding/json"
	"fmt"
)

// The workflow gateway forwards whatever shape the CRM happens to answer
// with: a bare array, {"data": [...]}, {"data": {"orders": [...]}}, or
// {"data": {"data": [...]}}. NormalizeOrders collapses every known shape into
// canonical []Order so the rest of the codebase never sees the variability.
func NormalizeOrders(raw []byte) ([]Order, error) {
	// Bare array first
	var direct []Order
	if err := json.Unmarshal(raw, &direct); err == nil {
		return ensureOrders(direct), nil
	}

	var envelope struct {
		Orders []Order         `json:"orders"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("unrecognized orders response: %w", err)
	}
	if len(envelope.Orders) > 0 {
		return ensureOrders(envelope.Orders), nil
	}
	if len(envelope.Data) == 0 {
		return []Order{}, nil
	}

	// data may itself be an array, or a nested envelope
	var inner []Order
	if err := json.Unmarshal(envelope.Data, &inner); err == nil {
		return ensureOrders(inner), nil
	}

	var nested struct {
		Orders []Order         `json:"orders"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(envelope.Data, &nested); err != nil {
		return nil, fmt.Errorf("unrecognized orders payload shape")
	}
	if len(nested.Orders) > 0 {
		return ensureOrders(nested.Orders), nil
	}
	if len(nested.Data) > 0 {
		var deep []Order
		if err := json.Unmarshal(nested.Data, &deep); err == nil {
			return ensureOrders(deep), nil
		}
	}

	return []Order{}, nil
}

// ensureOrders guarantees non-nil slices so callers can range without checks
func ensureOrders(orders []Order) []Order {
	if orders == nil {
		return []Order{}
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []OrderLine{}
		}
	}
	return orders
}
