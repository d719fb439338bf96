//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"herbmart/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAvailable(ctx context.Context) ([]entities.Order, error)
	GetByAgent(ctx context.Context, agentID int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)

	// Claim assigns only while agent_id is still NULL; a lost race
	// surfaces as ErrOrderAlreadyAssigned.
	Claim(ctx context.Context, orderID string, agentID int64, trackingNumber string) (*entities.Order, error)

	// Assign overwrites the current assignee (admin manual assign).
	Assign(ctx context.Context, orderID string, agentID int64, trackingNumber string) (*entities.Order, error)

	ReleaseStaleAssignments(ctx context.Context, olderThan time.Duration) (int64, error)
}

type AgentService interface {
	GetAgent(ctx context.Context, id int64) (*entities.DeliveryAgent, error)
	GetAgentByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error)
	GetLocatedAvailableAgents(ctx context.Context) ([]entities.DeliveryAgent, error)
}

type TrackingFactory interface {
	NewTrackingNumber() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
