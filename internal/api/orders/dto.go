package orders

import (
	"math"

	"artflow-backend/internal/domain/records"
)

// parseOrderItems turns the raw items payload into order lines. Missing
// quantity defaults to 1 and missing price to 0; fractional quantities
// are truncated. Structural problems are reported against "items".
func parseOrderItems(raw any) ([]records.OrderItemInput, *records.ValidationError) {
	items, ok := raw.([]any)
	if !ok {
		return nil, &records.ValidationError{Field: "items", Reason: "must be a list of order items"}
	}

	lines := make([]records.OrderItemInput, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &records.ValidationError{Field: "items", Reason: "must be a list of order items"}
		}
		line := records.OrderItemInput{Quantity: 1}
		line.ItemID, _ = m["item_id"].(string)
		if rawQty, ok := m["quantity"]; ok && rawQty != nil {
			qty, ok := rawQty.(float64)
			if !ok {
				return nil, &records.ValidationError{Field: "items", Reason: "order item quantity must be a number"}
			}
			line.Quantity = int(math.Trunc(qty))
		}
		if rawPrice, ok := m["price"]; ok && rawPrice != nil {
			price, ok := rawPrice.(float64)
			if !ok {
				return nil, &records.ValidationError{Field: "items", Reason: "order item price must be a number"}
			}
			line.Price = price
		}
		lines = append(lines, line)
	}
	return lines, nil
}
