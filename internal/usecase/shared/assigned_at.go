package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AssignmentTimeCache remembers when the expiry engine first saw an assigned
// booking that has no recorded assignment time. It must survive restarts.
type AssignmentTimeCache interface {
	Get(ctx context.Context, bookingID uuid.UUID) (time.Time, bool, error)
	// PutIfAbsent stores at unless a value exists. It returns the stored value
	// and whether this call created it.
	PutIfAbsent(ctx context.Context, bookingID uuid.UUID, at time.Time) (time.Time, bool, error)
	Delete(ctx context.Context, bookingID uuid.UUID) error
}
