package entities

import "time"

type LeaveRequest struct {
	ID          int64
	AgentID     int64
	Type        LeaveType
	Reason      string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      LeaveStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveType string

const (
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveVacation  LeaveType = "vacation"
	LeaveEmergency LeaveType = "emergency"
)

func (t LeaveType) String() string {
	return string(t)
}

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveSick, LeavePersonal, LeaveVacation, LeaveEmergency:
		return true
	default:
		return false
	}
}

type LeaveStatusType string

const (
	LeavePending   LeaveStatusType = "pending"
	LeaveApproved  LeaveStatusType = "approved"
	LeaveRejected  LeaveStatusType = "rejected"
	LeaveCancelled LeaveStatusType = "cancelled"
)

func (s LeaveStatusType) String() string {
	return string(s)
}

// LeaveApplication is the agent-submitted payload before it becomes a
// stored LeaveRequest.
type LeaveApplication struct {
	Type        LeaveType
	Reason      string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}
