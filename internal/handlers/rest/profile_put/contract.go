//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_put_test
package profile_put

import (
	"context"

	"herbmart/internal/entities"
	"herbmart/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetAgentByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error)
	UpdateProfile(ctx context.Context, agentModify entities.AgentModify) (*entities.DeliveryAgent, error)
}
