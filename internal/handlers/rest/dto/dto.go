// Package dto holds the JSON wire shapes of the REST surface and their
// entity mappings.
package dto

import (
	"time"

	"herbmart/internal/entities"
)

type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"userId"`
	Items             []OrderItem `json:"items"`
	TotalAmount       float64     `json:"totalAmount"`
	Status            string      `json:"status"`
	DeliveryStatus    string      `json:"deliveryStatus"`
	AgentID           *int64      `json:"agentId,omitempty"`
	TrackingNumber    *string     `json:"trackingNumber,omitempty"`
	Destination       *GeoPoint   `json:"destination,omitempty"`
	OrderedAt         time.Time   `json:"orderedAt"`
	NextDeliverySteps []string    `json:"nextDeliverySteps"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Agent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Location    *GeoPoint `json:"location,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
}

type NearestCandidate struct {
	Agent      Agent   `json:"agent"`
	DistanceKm float64 `json:"distanceKm"`
}

type Leave struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

type Error struct {
	Error string `json:"error"`
}

type AssignDeliveryRequest struct {
	DeliveryID int64 `json:"deliveryId"`
}

type AutoAssignResponse struct {
	Order    Order    `json:"order"`
	Delivery Delivery `json:"delivery"`
	Distance float64  `json:"distance"`
}

type Delivery struct {
	Name string `json:"name"`
}

type DeliveryStatusRequest struct {
	Status string `json:"status"`
}

type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type LeaveRequest struct {
	Type        string `json:"type"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

const dateLayout = "2006-01-02"

func FromOrder(o *entities.Order) Order {
	orderDTO := Order{
		ID:             o.ID,
		UserID:         o.UserID,
		TotalAmount:    o.TotalAmount,
		Status:         o.Status.String(),
		DeliveryStatus: o.DeliveryStatus.String(),
		AgentID:        o.AgentID,
		TrackingNumber: o.TrackingNumber,
		OrderedAt:      o.OrderedAt,
	}

	orderDTO.Items = make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		orderDTO.Items = append(orderDTO.Items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if o.Destination != nil {
		orderDTO.Destination = &GeoPoint{
			Latitude:  o.Destination.Latitude,
			Longitude: o.Destination.Longitude,
		}
	}

	// Cancelled orders expose no delivery actions whatever the delivery
	// axis says; elsewhere only the legal next steps are offered.
	orderDTO.NextDeliverySteps = []string{}
	if o.Status != entities.OrderCancelled {
		for _, next := range o.DeliveryStatus.NextStatuses() {
			orderDTO.NextDeliverySteps = append(orderDTO.NextDeliverySteps, next.String())
		}
	}

	return orderDTO
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, FromOrder(&orders[i]))
	}
	return result
}

func FromAgent(a *entities.DeliveryAgent) Agent {
	agentDTO := Agent{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		IsAvailable: a.IsAvailable,
	}
	if a.Location != nil {
		agentDTO.Location = &GeoPoint{
			Latitude:  a.Location.Latitude,
			Longitude: a.Location.Longitude,
		}
	}
	return agentDTO
}

func FromAgentList(agents []entities.DeliveryAgent) []Agent {
	result := make([]Agent, 0, len(agents))
	for i := range agents {
		result = append(result, FromAgent(&agents[i]))
	}
	return result
}

func FromCandidateList(candidates []entities.NearestCandidate) []NearestCandidate {
	result := make([]NearestCandidate, 0, len(candidates))
	for i := range candidates {
		result = append(result, NearestCandidate{
			Agent:      FromAgent(&candidates[i].Agent),
			DistanceKm: candidates[i].DistanceKm,
		})
	}
	return result
}

func FromLeave(l *entities.LeaveRequest) Leave {
	return Leave{
		ID:          l.ID,
		Type:        l.Type.String(),
		Reason:      l.Reason,
		Description: l.Description,
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		Status:      l.Status.String(),
	}
}

func FromLeaveList(leaves []entities.LeaveRequest) []Leave {
	result := make([]Leave, 0, len(leaves))
	for i := range leaves {
		result = append(result, FromLeave(&leaves[i]))
	}
	return result
}

// ParseDate parses the yyyy-mm-dd dates used by the leave endpoints.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
