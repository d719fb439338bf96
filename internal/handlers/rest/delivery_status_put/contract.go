//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_put_test
package delivery_status_put

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
	AdvanceDeliveryStatus(ctx context.Context, orderID, agentUserID string, next entities.DeliveryStatusType) (*entities.Order, error)
}
