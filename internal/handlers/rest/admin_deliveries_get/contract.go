//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_deliveries_get_test
package admin_deliveries_get

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
	GetAgents(ctx context.Context) ([]entities.DeliveryAgent, error)
}
