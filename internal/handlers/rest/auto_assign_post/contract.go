//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auto_assign_post_test
package auto_assign_post

import (
	"context"

	"herbmart/internal/service/assignment"
	"herbmart/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AutoAssignNearest(ctx context.Context, orderID string) (*assignment.AssignmentResult, error)
}
