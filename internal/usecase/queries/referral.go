package queries

//go:generate mockgen -source=referral.go -destination=../../../tests/mock/queries/referral.go -package=queriesmock

import (
	"context"

	"fieldservice/internal/domain/referral"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReferralQueries interface {
	ReferralSummaryFor(ctx context.Context, actor user.Actor, referrerID uuid.UUID) (referral.Summary, error)
}

type referralQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReferralQueries(uow shared.UnitOfWork) ReferralQueries {
	return &referralQueriesImpl{uow: uow}
}

func (q *referralQueriesImpl) ReferralSummaryFor(ctx context.Context, actor user.Actor, referrerID uuid.UUID) (referral.Summary, error) {
	if err := shared.RequireActFor(actor, referrerID); err != nil {
		return referral.Summary{}, err
	}
	var cs []*referral.Commission
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Specialists().FindByID(ctx, referrerID); derr != nil {
			return derr
		}
		var derr error
		cs, derr = tx.Referrals().ListByReferrer(ctx, referrerID)
		return derr
	})
	if err != nil {
		return referral.Summary{}, err
	}
	return referral.Summarize(referrerID, cs), nil
}
