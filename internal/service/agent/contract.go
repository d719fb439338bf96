//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_test
package agent

import (
	"context"

	"herbmart/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliveryAgent, error)
	GetByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error)
	GetAll(ctx context.Context) ([]entities.DeliveryAgent, error)
	GetAvailableLocated(ctx context.Context) ([]entities.DeliveryAgent, error)
	Update(ctx context.Context, agentModify entities.AgentModify) (*entities.DeliveryAgent, error)
	ToggleAvailability(ctx context.Context, id int64) (*entities.DeliveryAgent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
