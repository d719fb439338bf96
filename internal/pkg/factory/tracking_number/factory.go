package tracking_number

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "HM"

// TrackingFactory issues tracking numbers on first assignment. The number
// sticks with the order for life, re-assignment never reissues it.
type TrackingFactory struct{}

func New() *TrackingFactory {
	return &TrackingFactory{}
}

func (f *TrackingFactory) NewTrackingNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + id[:12]
}
