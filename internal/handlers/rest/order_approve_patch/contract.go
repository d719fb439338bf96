//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_approve_patch_test
package order_approve_patch

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
	ApproveOrder(ctx context.Context, id string) (*entities.Order, error)
}
