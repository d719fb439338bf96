package order

import "time"

type OrderDB struct {
	ID             string
	UserID         string
	Status         string
	DeliveryStatus string
	AgentID        *int64
	TrackingNumber *string
	TotalAmount    float64
	DestLatitude   *float64
	DestLongitude  *float64
	OrderedAt      time.Time
	AssignedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []OrderItemDB
}

type OrderItemDB struct {
	ProductID string
	Quantity  int32
	UnitPrice float64
}
