//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_claim_post_test
package order_claim_post

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
	ClaimOrder(ctx context.Context, orderID, agentUserID string) (*entities.Order, error)
}
