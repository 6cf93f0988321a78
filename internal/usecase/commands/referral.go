package commands

//go:generate mockgen -source=referral.go -destination=../../../tests/mock/commands/referral.go -package=commandsmock

import (
	"context"

	"fieldservice/internal/domain/referral"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReferralCommands interface {
	MarkReferralPaid(ctx context.Context, actor user.Actor, commissionID uuid.UUID) (*referral.Commission, error)
	MarkAllPaidForReferrer(ctx context.Context, actor user.Actor, referrerID uuid.UUID) (int, error)
}

type referralUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReferralUseCase(uow shared.UnitOfWork, clk clock.Clock) ReferralCommands {
	return &referralUseCaseImpl{uow: uow, clock: clk}
}

func (uc *referralUseCaseImpl) MarkReferralPaid(ctx context.Context, actor user.Actor, commissionID uuid.UUID) (*referral.Commission, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var paid *referral.Commission
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Referrals().FindByID(ctx, commissionID)
		if derr != nil {
			return derr
		}
		if derr = c.MarkPaid(uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Referrals().MarkPaid(ctx, c); derr != nil {
			return derr
		}
		paid = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

func (uc *referralUseCaseImpl) MarkAllPaidForReferrer(ctx context.Context, actor user.Actor, referrerID uuid.UUID) (int, error) {
	if err := shared.RequireAdmin(actor); err != nil {
		return 0, err
	}

	count := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count = 0
		cs, derr := tx.Referrals().ListByReferrer(ctx, referrerID)
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()
		for _, c := range cs {
			if c.Status() == referral.StatusPaid {
				continue
			}
			if derr = c.MarkPaid(now); derr != nil {
				return derr
			}
			if derr = tx.Referrals().MarkPaid(ctx, c); derr != nil {
				return derr
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
