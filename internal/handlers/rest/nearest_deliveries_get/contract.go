//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=nearest_deliveries_get_test
package nearest_deliveries_get

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
	NearestCandidates(ctx context.Context, orderID string, limit int) ([]entities.NearestCandidate, error)
}
