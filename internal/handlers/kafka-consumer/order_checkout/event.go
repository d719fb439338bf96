package order_checkout

import "time"

// checkoutEvent is the payload of order.checkout.completed messages
// published by the storefront after payment settles.
type checkoutEvent struct {
	OrderID     string         `json:"orderId"`
	UserID      string         `json:"userId"`
	Items       []checkoutItem `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	Destination *checkoutPoint `json:"destination,omitempty"`
	OrderedAt   time.Time      `json:"orderedAt"`
}

type checkoutItem struct {
	ProductID string  `json:"productId"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type checkoutPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
