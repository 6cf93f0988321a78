// Package notifier turns lifecycle events into notification_jobs rows that a
// delivery process picks up later.
package notifier

import (
	"context"
	"encoding/json"

	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/shared"
)

type payload struct {
	BookingID    *string        `json:"booking_id,omitempty"`
	SpecialistID *string        `json:"specialist_id,omitempty"`
	Message      string         `json:"message"`
	Data         map[string]any `json:"data,omitempty"`
}

type OutboxNotifier struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOutboxNotifier(uow shared.UnitOfWork, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{uow: uow, clock: clk}
}

var _ shared.Notifier = (*OutboxNotifier)(nil)

func (n *OutboxNotifier) Notify(ctx context.Context, e shared.Event) error {
	p := payload{Message: e.Message, Data: e.Payload}
	if e.BookingID != nil {
		s := e.BookingID.String()
		p.BookingID = &s
	}
	if e.SpecialistID != nil {
		s := e.SpecialistID.String()
		p.SpecialistID = &s
	}
	body, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}

	topic := Topic(e)
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, string(e.Kind), topic, body, n.clock.Now())
	})
}

// Topic routes specialist-facing events to that specialist and everything
// else to the admin queue.
func Topic(e shared.Event) string {
	switch e.Kind {
	case shared.EventAssignment, shared.EventRequestApproved, shared.EventRequestRejected:
		if e.SpecialistID != nil {
			return shared.TopicSpecialist + ":" + e.SpecialistID.String()
		}
	}
	return shared.TopicAdmins
}
