package leave

import (
	"strings"
	"time"

	"herbmart/internal/entities"
)

const (
	minReasonLen      = 3
	minDescriptionLen = 10
)

// validateApplication checks the submission invariants. Dates compare at
// day granularity: applying for leave starting today is legal.
func validateApplication(application entities.LeaveApplication, now time.Time) error {
	if !application.Type.IsValid() {
		return ErrInvalidLeaveType
	}
	if len(strings.TrimSpace(application.Reason)) < minReasonLen {
		return ErrReasonTooShort
	}
	if len(strings.TrimSpace(application.Description)) < minDescriptionLen {
		return ErrDescriptionTooShort
	}

	today := truncateToDay(now)
	if truncateToDay(application.StartDate).Before(today) {
		return ErrStartDateInPast
	}
	if truncateToDay(application.EndDate).Before(truncateToDay(application.StartDate)) {
		return ErrEndBeforeStart
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
