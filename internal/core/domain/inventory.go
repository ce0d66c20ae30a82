package domain

// InventoryItem tracks stock of a consumable or material.
// QuantityOnHand may be fractional for unit types like millilitres.
type InventoryItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	SKU              string  `json:"sku,omitempty"`
	Unit             string  `json:"unit"`
	QuantityOnHand   float64 `json:"quantity_on_hand"`
	ReorderThreshold float64 `json:"reorder_threshold"`
	UnitPrice        float64 `json:"unit_price"`
	LastReceivedAt   string  `json:"last_received_at,omitempty"`
}
