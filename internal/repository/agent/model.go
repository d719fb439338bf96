package agent

import "time"

type AgentDB struct {
	ID          int64
	UserID      string
	Name        string
	Email       string
	Latitude    *float64
	Longitude   *float64
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
