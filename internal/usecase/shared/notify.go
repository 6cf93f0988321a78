package shared

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventAssignment      EventKind = "assignment"
	EventAccepted        EventKind = "accepted"
	EventRejected        EventKind = "rejected"
	EventProductRequest  EventKind = "product-request"
	EventRequestApproved EventKind = "request-approved"
	EventRequestRejected EventKind = "request-rejected"
)

// Audiences
const (
	TopicAdmins     = "admins"
	TopicSpecialist = "specialist"
)

type Event struct {
	Kind         EventKind
	BookingID    *uuid.UUID
	SpecialistID *uuid.UUID
	Message      string
	Payload      map[string]any
}

// Notifier is called after the state change has committed. Callers log
// failures and move on.
type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// Dispatch sends events in order and only logs failures.
func Dispatch(ctx context.Context, n Notifier, events ...Event) {
	for _, e := range events {
		if err := n.Notify(ctx, e); err != nil {
			attrs := []any{"kind", e.Kind, "error", err.Error()}
			if e.BookingID != nil {
				attrs = append(attrs, "booking_id", e.BookingID.String())
			}
			slog.WarnContext(ctx, "notification dropped", attrs...)
		}
	}
}
