//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=leave_delete_test
package leave_delete

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
	CancelLeave(ctx context.Context, agentUserID string, leaveID int64) (*entities.LeaveRequest, error)
}
