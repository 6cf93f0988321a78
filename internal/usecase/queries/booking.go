package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"slices"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

// PendingView is an assigned booking waiting on the specialist's answer.
type PendingView struct {
	Booking   *booking.Booking
	Deadline  *time.Time
	Remaining time.Duration
	// Expired is true between the deadline and the next expiry scan.
	Expired bool
}

type RejectionView struct {
	Booking *booking.Booking
	Count   int
}

type BookingQueries interface {
	GetBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error)
	PendingForSpecialist(ctx context.Context, actor user.Actor, specialistID uuid.UUID) ([]PendingView, error)
	RejectionHistoryOf(ctx context.Context, actor user.Actor, bookingID uuid.UUID) ([]string, error)
	RejectionsFor(ctx context.Context, actor user.Actor, specialistID uuid.UUID) ([]RejectionView, error)
	RejectionCount(ctx context.Context, actor user.Actor, bookingID uuid.UUID, specialistName string) (int, error)
}

type bookingQueriesImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy shared.Policy
}

func NewBookingQueries(uow shared.UnitOfWork, clk clock.Clock, policy shared.Policy) BookingQueries {
	return &bookingQueriesImpl{uow: uow, clock: clk, policy: policy}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error) {
	var b *booking.Booking
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		b, derr = tx.Bookings().FindByID(ctx, id)
		return derr
	})
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return b, nil
	}
	if sid := b.SpecialistID(); sid != nil && actor.CanActFor(*sid) {
		return b, nil
	}
	return nil, shared.ErrNotOwnSchedule
}

func (q *bookingQueriesImpl) PendingForSpecialist(ctx context.Context, actor user.Actor, specialistID uuid.UUID) ([]PendingView, error) {
	if err := shared.RequireActFor(actor, specialistID); err != nil {
		return nil, err
	}

	var bookings []*booking.Booking
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		bookings, derr = tx.Bookings().ListBySpecialist(ctx, specialistID, booking.StatusAssigned)
		return derr
	})
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	views := make([]PendingView, 0, len(bookings))
	for _, b := range bookings {
		v := PendingView{Booking: b}
		if d, ok := b.Deadline(q.policy.ResponseWindow); ok {
			v.Deadline = &d
			v.Expired = now.After(d)
			if !v.Expired {
				v.Remaining = d.Sub(now)
			}
		}
		views = append(views, v)
	}
	// Soonest deadline first; unknown deadlines last.
	slices.SortStableFunc(views, func(a, b PendingView) int {
		switch {
		case a.Deadline == nil && b.Deadline == nil:
			return 0
		case a.Deadline == nil:
			return 1
		case b.Deadline == nil:
			return -1
		}
		return a.Deadline.Compare(*b.Deadline)
	})
	return views, nil
}

func (q *bookingQueriesImpl) RejectionHistoryOf(ctx context.Context, actor user.Actor, bookingID uuid.UUID) ([]string, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return nil, err
	}
	var history []string
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		history = b.RejectionHistory()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// RejectionsFor matches on the specialist's current name, regardless of who
// holds the booking now.
func (q *bookingQueriesImpl) RejectionsFor(ctx context.Context, actor user.Actor, specialistID uuid.UUID) ([]RejectionView, error) {
	if err := shared.RequireActFor(actor, specialistID); err != nil {
		return nil, err
	}

	var views []RejectionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Specialists().FindByID(ctx, specialistID)
		if derr != nil {
			return derr
		}
		bookings, derr := tx.Bookings().ListRejectedBy(ctx, s.Name())
		if derr != nil {
			return derr
		}
		views = make([]RejectionView, 0, len(bookings))
		for _, b := range bookings {
			views = append(views, RejectionView{Booking: b, Count: b.RejectionCount(s.Name())})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *bookingQueriesImpl) RejectionCount(ctx context.Context, actor user.Actor, bookingID uuid.UUID, specialistName string) (int, error) {
	history, err := q.RejectionHistoryOf(ctx, actor, bookingID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, name := range history {
		if name == specialistName {
			n++
		}
	}
	return n, nil
}
