package queries

//go:generate mockgen -source=earnings.go -destination=../../../tests/mock/queries/earnings.go -package=queriesmock

import (
	"context"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/earnings"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

type EarningsQueries interface {
	EarningsSummaryFor(ctx context.Context, actor user.Actor, specialistID uuid.UUID) (earnings.Summary, error)
}

type earningsQueriesImpl struct {
	uow    shared.UnitOfWork
	policy shared.Policy
}

func NewEarningsQueries(uow shared.UnitOfWork, policy shared.Policy) EarningsQueries {
	return &earningsQueriesImpl{uow: uow, policy: policy}
}

func (q *earningsQueriesImpl) EarningsSummaryFor(ctx context.Context, actor user.Actor, specialistID uuid.UUID) (earnings.Summary, error) {
	if err := shared.RequireActFor(actor, specialistID); err != nil {
		return earnings.Summary{}, err
	}

	var summary earnings.Summary
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Specialists().FindByID(ctx, specialistID)
		if derr != nil {
			return derr
		}
		completed, derr := tx.Bookings().ListBySpecialist(ctx, specialistID, booking.StatusCompleted)
		if derr != nil {
			return derr
		}
		prices, derr := tx.Catalog().ServicePrices(ctx)
		if derr != nil {
			return derr
		}
		summary, derr = earnings.Summarize(specialistID, s.EffectiveRate(q.policy.DefaultCommissionRate), completed, prices)
		return derr
	})
	return summary, err
}
