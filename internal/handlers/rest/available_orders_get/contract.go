//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=available_orders_get_test
package available_orders_get

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
	GetAvailableOrders(ctx context.Context) ([]entities.Order, error)
}
