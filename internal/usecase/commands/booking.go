package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/earnings"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/referral"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	Details               booking.Details
	SuggestedSpecialistID *uuid.UUID
	BackendID             *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor user.Actor, in CreateBookingInput) (*booking.Booking, error)
	Assign(ctx context.Context, actor user.Actor, bookingID, specialistID uuid.UUID) (*booking.Booking, error)
	Accept(ctx context.Context, actor user.Actor, bookingID, specialistID uuid.UUID) (*booking.Booking, error)
	Reject(ctx context.Context, actor user.Actor, bookingID, specialistID uuid.UUID, reason string) (*booking.Booking, error)
	Complete(ctx context.Context, actor user.Actor, bookingID, specialistID uuid.UUID, details booking.CompletionDetails) (*booking.Booking, error)
	MarkPaid(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*booking.Booking, error)
	MarkAllPaidForSpecialist(ctx context.Context, actor user.Actor, specialistID uuid.UUID) (int, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.Notifier
	cache    shared.AssignmentTimeCache
	metrics  shared.Metrics
	policy   shared.Policy
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	notifier shared.Notifier,
	cache shared.AssignmentTimeCache,
	metrics shared.Metrics,
	policy shared.Policy,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
		cache:    cache,
		metrics:  metrics,
		policy:   policy,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, actor user.Actor, in CreateBookingInput) (*booking.Booking, error) {
	if in.SuggestedSpecialistID != nil {
		if err := shared.RequireAdmin(actor); err != nil {
			return nil, err
		}
	}

	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := booking.NewBooking(in.Details, in.SuggestedSpecialistID, in.BackendID, uc.clock.Now())
		if derr != nil {
			return derr
		}
		prices, derr := tx.Catalog().ServicePrices(ctx)
		if derr != nil {
			return derr
		}
		if _, derr = earnings.CatalogTotal(prices, b.Details().ServiceTypes()); derr != nil {
			return derr
		}
		if in.SuggestedSpecialistID != nil {
			if _, derr = tx.Specialists().FindByID(ctx, *in.SuggestedSpecialistID); derr != nil {
				return derr
			}
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *bookingUseCaseImpl) Assign(ctx context.Context, actor user.Actor, bookingID, specialistID uuid.UUID) (*booking.Booking, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var (
		updated *booking.Booking
		name    string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		s, derr := tx.Specialists().FindByID(ctx, specialistID)
		if derr != nil {
			return derr
		}
		prices, derr := tx.Catalog().ServicePrices(ctx)
		if derr != nil {
			return derr
		}
		estimate, derr := earnings.CatalogTotal(prices, b.Details().ServiceTypes())
		if derr != nil {
			return derr
		}
		if derr = b.Assign(s.ID(), estimate, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		updated, name = b, s.Name()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingTransition("assign")
	uc.forgetFallback(ctx, bookingID)
	deadline, _ := updated.Deadline(uc.policy.ResponseWindow)
	shared.Dispatch(ctx, uc.notifier, shared.Event{
		Kind:         shared.EventAssignment,
		BookingID:    &bookingID,
		SpecialistID: &specialistID,
		Message:      fmt.Sprintf("New booking for %s on %s", updated.Details().ClientName, updated.Details().Date.Format("2006-01-02")),
		Payload: map[string]any{
			"specialist_name": name,
			"deadline":        deadline,
		},
	})
	return updated, nil
}

func (uc *bookingUseCaseImpl) Accept(ctx context.Context, actor user.Actor, bookingID, specialistID uuid.UUID) (*booking.Booking, error) {
	if err := shared.RequireActFor(actor, specialistID); err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		if derr = b.Accept(specialistID, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingTransition("accept")
	uc.forgetFallback(ctx, bookingID)
	shared.Dispatch(ctx, uc.notifier, shared.Event{
		Kind:         shared.EventAccepted,
		BookingID:    &bookingID,
		SpecialistID: &specialistID,
		Message:      fmt.Sprintf("Booking for %s was accepted", updated.Details().ClientName),
	})
	return updated, nil
}

func (uc *bookingUseCaseImpl) Reject(ctx context.Context, actor user.Actor, bookingID, specialistID uuid.UUID, reason string) (*booking.Booking, error) {
	if err := shared.RequireActFor(actor, specialistID); err != nil {
		return nil, err
	}

	var (
		updated *booking.Booking
		name    string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		s, derr := tx.Specialists().FindByID(ctx, specialistID)
		if derr != nil {
			return derr
		}
		if derr = b.Reject(specialistID, s.Name(), uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		updated, name = b, s.Name()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingTransition("reject")
	uc.forgetFallback(ctx, bookingID)
	shared.Dispatch(ctx, uc.notifier, shared.Event{
		Kind:         shared.EventRejected,
		BookingID:    &bookingID,
		SpecialistID: &specialistID,
		Message:      fmt.Sprintf("%s rejected the booking for %s; it needs reassignment", name, updated.Details().ClientName),
		Payload: map[string]any{
			"reason":          reason,
			"rejected_by":     name,
			"rejection_count": updated.RejectionCount(name),
		},
	})
	return updated, nil
}

func (uc *bookingUseCaseImpl) Complete(
	ctx context.Context,
	actor user.Actor,
	bookingID, specialistID uuid.UUID,
	details booking.CompletionDetails,
) (*booking.Booking, error) {
	if err := shared.RequireActFor(actor, specialistID); err != nil {
		return nil, err
	}

	var (
		updated    *booking.Booking
		commission *referral.Commission
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		deductions, derr := consumedCost(ctx, tx, details.ConsumedProductIDs)
		if derr != nil {
			return derr
		}
		if derr = b.Complete(specialistID, details, deductions, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		commission, derr = uc.recordReferral(ctx, tx, b, specialistID)
		if derr != nil {
			return derr
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingTransition("complete")
	if commission != nil {
		slog.InfoContext(ctx, "referral commission recorded",
			"referrer_id", commission.ReferrerID().String(),
			"booking_id", bookingID.String(),
			"amount", commission.CommissionAmount().Amount())
	}
	return updated, nil
}

// consumedCost sums one unit price per consumed product id.
func consumedCost(ctx context.Context, tx shared.Tx, ids []string) (money.Money, error) {
	if len(ids) == 0 {
		return money.Zero(), nil
	}
	prices, err := tx.Catalog().ProductPrices(ctx, ids)
	if err != nil {
		return money.Zero(), err
	}
	total := money.Zero()
	for _, id := range ids {
		p, ok := prices[id]
		if !ok {
			return money.Zero(), errs.Wrapf(ErrUnknownProduct, "product %q", id)
		}
		total = total.Add(p)
	}
	return total, nil
}

// recordReferral pays the referrer once, on the referred specialist's first
// completed booking. The unique referred_id keeps concurrent completions honest.
func (uc *bookingUseCaseImpl) recordReferral(ctx context.Context, tx shared.Tx, b *booking.Booking, specialistID uuid.UUID) (*referral.Commission, error) {
	s, err := tx.Specialists().FindByID(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	if !s.WasReferred() {
		return nil, nil
	}
	completed, err := tx.Bookings().CountCompletedBySpecialist(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	if completed != 1 {
		return nil, nil
	}
	gross := *b.Price()
	c, err := referral.NewCommission(*s.ReferredByID(), specialistID, b.ID(), gross, uc.policy.ReferralPercent, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	created, err := tx.Referrals().Create(ctx, c)
	if err != nil || !created {
		return nil, err
	}
	return c, nil
}

func (uc *bookingUseCaseImpl) MarkPaid(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*booking.Booking, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		if derr = b.MarkPaid(uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.BookingTransition("mark_paid")
	return updated, nil
}

func (uc *bookingUseCaseImpl) MarkAllPaidForSpecialist(ctx context.Context, actor user.Actor, specialistID uuid.UUID) (int, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return 0, err
	}

	paid := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		paid = 0
		if _, derr := tx.Specialists().FindByID(ctx, specialistID); derr != nil {
			return derr
		}
		bookings, derr := tx.Bookings().ListBySpecialist(ctx, specialistID, booking.StatusCompleted)
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()
		for _, b := range bookings {
			if b.IsPaid() {
				continue
			}
			if derr = b.MarkPaid(now); derr != nil {
				return derr
			}
			if derr = tx.Bookings().Update(ctx, b); derr != nil {
				return derr
			}
			paid++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	for range paid {
		uc.metrics.BookingTransition("mark_paid")
	}
	return paid, nil
}

func (uc *bookingUseCaseImpl) forgetFallback(ctx context.Context, bookingID uuid.UUID) {
	if err := uc.cache.Delete(ctx, bookingID); err != nil {
		slog.WarnContext(ctx, "failed to clear fallback assignment time",
			"booking_id", bookingID.String(), "error", err.Error())
	}
}
