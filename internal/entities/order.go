package entities

import "time"

type Order struct {
	ID             string
	UserID         string
	Items          []OrderItem
	TotalAmount    float64
	Status         OrderStatusType
	DeliveryStatus DeliveryStatusType
	AgentID        *int64
	TrackingNumber *string
	Destination    *GeoPoint
	OrderedAt      time.Time
	AssignedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderItem struct {
	ProductID string
	Quantity  int32
	UnitPrice float64
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Cancellable is true only in the window before fulfilment starts.
func (s OrderStatusType) Cancellable() bool {
	return s == OrderPending || s == OrderConfirmed
}

func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type DeliveryStatusType string

const (
	DeliveryUnassigned     DeliveryStatusType = "unassigned"
	DeliveryAssigned       DeliveryStatusType = "assigned"
	DeliveryPickedUp       DeliveryStatusType = "picked_up"
	DeliveryOutForDelivery DeliveryStatusType = "out_for_delivery"
	DeliveryDelivered      DeliveryStatusType = "delivered"
	DeliveryFailed         DeliveryStatusType = "failed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) IsValid() bool {
	switch s {
	case DeliveryUnassigned, DeliveryAssigned, DeliveryPickedUp, DeliveryOutForDelivery, DeliveryDelivered, DeliveryFailed:
		return true
	default:
		return false
	}
}

// deliveryTransitions is the fulfilment state machine. failed keeps a
// retry edge back to out_for_delivery.
var deliveryTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliveryUnassigned:     {DeliveryAssigned},
	DeliveryAssigned:       {DeliveryPickedUp},
	DeliveryPickedUp:       {DeliveryOutForDelivery},
	DeliveryOutForDelivery: {DeliveryDelivered, DeliveryFailed},
	DeliveryFailed:         {DeliveryOutForDelivery},
}

func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the legal transitions out of the current state,
// in a stable order.
func (s DeliveryStatusType) NextStatuses() []DeliveryStatusType {
	next := deliveryTransitions[s]
	out := make([]DeliveryStatusType, len(next))
	copy(out, next)
	return out
}

type OrderModify struct {
	ID             *string
	Status         *OrderStatusType
	DeliveryStatus *DeliveryStatusType
	TrackingNumber *string
}
