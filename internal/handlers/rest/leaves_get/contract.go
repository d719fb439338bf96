//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=leaves_get_test
package leaves_get

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
	GetAgentLeaves(ctx context.Context, agentUserID string) ([]entities.LeaveRequest, error)
}
