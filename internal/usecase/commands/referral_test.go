//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/referral"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/infra/memory"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReferralUseCaseTestSuite struct {
	suite.Suite
	ctx   context.Context
	uow   *memory.UoW
	clock *clock.MockClock
	cmds  commands.ReferralCommands

	admin    user.Actor
	referrer uuid.UUID
}

func (s *ReferralUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memory.NewUoW()
	s.clock = clock.NewMockClock(time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))
	s.cmds = commands.NewReferralUseCase(s.uow, s.clock)
	s.admin = user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	s.referrer = uuid.New()
}

func TestReferralUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReferralUseCaseTestSuite))
}

func (s *ReferralUseCaseTestSuite) seedPending(referrer uuid.UUID, gross int64) *referral.Commission {
	c, err := referral.NewCommission(referrer, uuid.New(), uuid.New(), money.New(gross), money.MustPercentage(10), s.clock.Now())
	s.Require().NoError(err)
	s.uow.SeedCommission(c)
	return c
}

func (s *ReferralUseCaseTestSuite) seedPaid(referrer uuid.UUID, gross int64) *referral.Commission {
	paidAt := s.clock.Now().Add(-time.Hour)
	c := referral.ReconstructCommission(uuid.New(), referrer, uuid.New(), uuid.New(),
		money.New(gross), money.New(gross/10), referral.StatusPaid, paidAt.Add(-time.Hour), &paidAt)
	s.uow.SeedCommission(c)
	return c
}

func (s *ReferralUseCaseTestSuite) summary(referrer uuid.UUID) referral.Summary {
	var out referral.Summary
	err := s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		cs, err := tx.Referrals().ListByReferrer(ctx, referrer)
		out = referral.Summarize(referrer, cs)
		return err
	})
	s.Require().NoError(err)
	return out
}

func (s *ReferralUseCaseTestSuite) TestMarkReferralPaid() {
	s.Run("pays a pending commission once", func() {
		c := s.seedPending(s.referrer, 120000)

		paid, err := s.cmds.MarkReferralPaid(s.ctx, s.admin, c.ID())
		s.Require().NoError(err)
		s.Equal(referral.StatusPaid, paid.Status())
		s.Require().NotNil(paid.PaidAt())
		s.Equal(s.clock.Now(), *paid.PaidAt())

		_, err = s.cmds.MarkReferralPaid(s.ctx, s.admin, c.ID())
		s.ErrorIs(err, referral.ErrAlreadyPaid)
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Run("admin only", func() {
		c := s.seedPending(s.referrer, 100000)
		specialist := user.Actor{ID: s.referrer, Role: user.RoleSpecialist}

		_, err := s.cmds.MarkReferralPaid(s.ctx, specialist, c.ID())
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("unknown commission", func() {
		_, err := s.cmds.MarkReferralPaid(s.ctx, s.admin, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *ReferralUseCaseTestSuite) TestMarkAllPaidForReferrer() {
	s.seedPending(s.referrer, 100000)
	s.seedPending(s.referrer, 150000)
	s.seedPaid(s.referrer, 80000)
	otherReferrer := uuid.New()
	s.seedPending(otherReferrer, 90000)

	n, err := s.cmds.MarkAllPaidForReferrer(s.ctx, s.admin, s.referrer)
	s.Require().NoError(err)
	s.Equal(2, n, "already paid rows are skipped")

	sum := s.summary(s.referrer)
	s.True(sum.PendingTotal.IsZero())
	s.Equal(int64(10000+15000+8000), sum.PaidTotal.Amount())

	n, err = s.cmds.MarkAllPaidForReferrer(s.ctx, s.admin, s.referrer)
	s.Require().NoError(err)
	s.Zero(n)

	other := s.summary(otherReferrer)
	s.Equal(int64(9000), other.PendingTotal.Amount(), "other referrers are untouched")

	_, err = s.cmds.MarkAllPaidForReferrer(s.ctx, user.Actor{ID: s.referrer, Role: user.RoleSpecialist}, s.referrer)
	s.True(errs.Is(err, errs.ErrForbidden))
}
