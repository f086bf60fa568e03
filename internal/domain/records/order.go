package records

import "math"

// OrderItemInput is one order line as submitted by the caller. The unit
// price is taken as given, feeds the subtotal computation only, and is
// never stored on the order. There is no catalog price check; this is a
// known weak trust boundary.
type OrderItemInput struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderSubtotal sums quantity x price across all lines, rounded to two
// decimal places.
func OrderSubtotal(items []OrderItemInput) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.Price
	}
	return math.Round(subtotal*100) / 100
}

// OrderLines strips lines down to what the order persists: the catalog
// reference and the quantity.
func OrderLines(items []OrderItemInput) []map[string]any {
	lines := make([]map[string]any, 0, len(items))
	for _, item := range items {
		lines = append(lines, map[string]any{
			"item_id":  item.ItemID,
			"quantity": item.Quantity,
		})
	}
	return lines
}
