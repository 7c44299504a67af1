package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription enrolls an endpoint, under a pin, in a timeline.
//
// A subscription is never deleted; leaving a timeline sets End.
type Subscription struct {
	ID         uuid.UUID  `json:"id"`
	TimelineID uuid.UUID  `json:"timeline_id"`
	EndpointID string     `json:"endpoint_id"` // opaque identity supplied by the message transport
	Pin        string     `json:"pin"`         // name or id chosen by the subscriber
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"` // nil while the subscription is open-ended
}

// ActiveAt reports whether the subscription is still running at now.
// A subscription whose end equals now is already inactive.
func (s Subscription) ActiveAt(now time.Time) bool {
	return s.End == nil || s.End.After(now)
}
