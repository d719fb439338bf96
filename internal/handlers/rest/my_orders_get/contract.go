//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=my_orders_get_test
package my_orders_get

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
	GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error)
}
