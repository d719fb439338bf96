package order_checkout

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
	IngestCheckout(ctx context.Context, order entities.Order) (*entities.Order, error)
}
