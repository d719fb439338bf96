//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=leave_test
package leave

import (
	"context"

	"herbmart/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, leave entities.LeaveRequest) (*entities.LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (*entities.LeaveRequest, error)
	GetByAgent(ctx context.Context, agentID int64) ([]entities.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.LeaveStatusType) (*entities.LeaveRequest, error)
}

type AgentService interface {
	GetAgentByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
