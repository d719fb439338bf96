package leave

import "time"

type LeaveDB struct {
	ID          int64
	AgentID     int64
	Type        string
	Reason      string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
