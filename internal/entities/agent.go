package entities

import "time"

type DeliveryAgent struct {
	ID          int64
	UserID      string
	Name        string
	Email       string
	Location    *GeoPoint
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

type AgentModify struct {
	ID          *int64
	Name        *string
	Email       *string
	Location    *GeoPoint
	IsAvailable *bool
}

// NearestCandidate is a per-request suggestion, never persisted.
type NearestCandidate struct {
	Agent      DeliveryAgent
	DistanceKm float64
}
