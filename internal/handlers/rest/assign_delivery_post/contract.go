//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assign_delivery_post_test
package assign_delivery_post

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
	AssignOrder(ctx context.Context, orderID string, agentID int64) (*entities.Order, error)
}
