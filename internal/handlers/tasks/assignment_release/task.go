package assignment_release

import (
	"context"
	"time"

	"herbmart/pkg/logger"
)

type Service interface {
	ReleaseStaleAssignments(ctx context.Context) (int64, error)
}

// AssignmentRelease returns orders whose claimed delivery never started
// back to the available pool.
type AssignmentRelease struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAssignmentRelease(log logger.Logger, service Service, interval time.Duration) *AssignmentRelease {
	return &AssignmentRelease{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentRelease) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentRelease) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.ReleaseStaleAssignments(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("released_orders", rowsAffected),
		).Info("assignment release")
	}

	return err
}

func (a *AssignmentRelease) Info() string {
	return "assignment release"
}
