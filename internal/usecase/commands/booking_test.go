//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/specialist"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/infra/memory"
	"fieldservice/internal/infra/sqlitecache"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/config"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/queries"
	"fieldservice/internal/usecase/shared"
	"fieldservice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []shared.Event
}

func (n *recordingNotifier) Notify(_ context.Context, e shared.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return nil
}

func (n *recordingNotifier) kinds() []shared.EventKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]shared.EventKind, len(n.events))
	for i, e := range n.events {
		out[i] = e.Kind
	}
	return out
}

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	uow      *memory.UoW
	clock    *clock.MockClock
	notifier *recordingNotifier
	cmds     commands.BookingCommands
	earnings queries.EarningsQueries
	referral queries.ReferralQueries

	admin      user.Actor
	referrer   *specialist.Specialist
	carla      *specialist.Specialist
	other      *specialist.Specialist
	carlaActor user.Actor
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memory.NewUoW()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	s.notifier = &recordingNotifier{}

	cache, err := sqlitecache.Open(":memory:")
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = cache.Close() })

	policy, err := shared.NewPolicy(config.NewTestConfig())
	s.Require().NoError(err)

	s.cmds = commands.NewBookingUseCase(s.uow, s.clock, s.notifier, cache, shared.NopMetrics{}, policy)
	s.earnings = queries.NewEarningsQueries(s.uow, policy)
	s.referral = queries.NewReferralQueries(s.uow)

	s.uow.SeedServicePrice("standard", 100000)
	s.uow.SeedProduct("lotion-250", 8500)

	s.referrer = builder.NewSpecialistBuilder().With(func(b *builder.SpecialistBuilder) { b.Name = "Marta Díaz" }).BuildDomain()
	s.carla = builder.NewSpecialistBuilder().ReferredBy(s.referrer.ID()).BuildDomain()
	s.other = builder.NewSpecialistBuilder().With(func(b *builder.SpecialistBuilder) { b.Name = "Ana Pérez" }).BuildDomain()
	for _, sp := range []*specialist.Specialist{s.referrer, s.carla, s.other} {
		s.uow.SeedSpecialist(sp)
	}

	s.admin = user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	s.carlaActor = user.Actor{ID: s.carla.ID(), Role: user.RoleSpecialist}
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) createAndAssign(to uuid.UUID) *booking.Booking {
	created, err := s.cmds.CreateBooking(s.ctx, s.admin, commands.CreateBookingInput{Details: builder.NewBookingBuilder().Details()})
	s.Require().NoError(err)
	assigned, err := s.cmds.Assign(s.ctx, s.admin, created.ID(), to)
	s.Require().NoError(err)
	return assigned
}

func (s *BookingUseCaseTestSuite) completeInput() booking.CompletionDetails {
	return booking.CompletionDetails{
		Services:           []string{"standard"},
		Price:              money.New(120000),
		ConsumedProductIDs: []string{"lotion-250"},
	}
}

func (s *BookingUseCaseTestSuite) TestCreateBooking() {
	s.Run("only admins suggest a specialist", func() {
		id := s.carla.ID()
		_, err := s.cmds.CreateBooking(s.ctx, s.carlaActor, commands.CreateBookingInput{
			Details:               builder.NewBookingBuilder().Details(),
			SuggestedSpecialistID: &id,
		})
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("unpriced service type is rejected", func() {
		d := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ServiceType = "deluxe" }).Details()
		_, err := s.cmds.CreateBooking(s.ctx, s.admin, commands.CreateBookingInput{Details: d})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("starts pending", func() {
		b, err := s.cmds.CreateBooking(s.ctx, s.admin, commands.CreateBookingInput{Details: builder.NewBookingBuilder().Details()})
		s.Require().NoError(err)
		s.Equal(booking.StatusPending, b.Status())
		s.Nil(b.SpecialistID())
	})
}

func (s *BookingUseCaseTestSuite) TestAssignAcceptReject() {
	b := s.createAndAssign(s.carla.ID())
	s.Equal(booking.StatusAssigned, b.Status())
	s.Require().NotNil(b.EstimatedPrice())
	s.Equal(int64(100000), b.EstimatedPrice().Amount())

	s.Run("another specialist cannot accept", func() {
		otherActor := user.Actor{ID: s.other.ID(), Role: user.RoleSpecialist}
		_, err := s.cmds.Accept(s.ctx, otherActor, b.ID(), s.other.ID())
		s.True(errs.Is(err, errs.ErrStaleAssignment))
	})

	s.Run("specialists cannot act for someone else", func() {
		_, err := s.cmds.Accept(s.ctx, s.carlaActor, b.ID(), s.other.ID())
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("reject returns to pending and records the name", func() {
		s.clock.Add(10 * time.Minute)
		rejected, err := s.cmds.Reject(s.ctx, s.carlaActor, b.ID(), s.carla.ID(), "sick")
		s.Require().NoError(err)
		s.Equal(booking.StatusPending, rejected.Status())
		s.Equal([]string{"Carla Ruiz"}, rejected.RejectionHistory())
		s.Nil(rejected.AssignedAt())
	})

	s.Run("accepting after the booking went back to pending is stale", func() {
		_, err := s.cmds.Accept(s.ctx, s.carlaActor, b.ID(), s.carla.ID())
		s.True(errs.Is(err, errs.ErrStaleAssignment))
	})

	s.Run("a previous rejection does not block reassignment", func() {
		again, err := s.cmds.Assign(s.ctx, s.admin, b.ID(), s.carla.ID())
		s.Require().NoError(err)
		accepted, err := s.cmds.Accept(s.ctx, s.carlaActor, again.ID(), s.carla.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusAccepted, accepted.Status())
		s.Equal([]string{"Carla Ruiz"}, accepted.RejectionHistory())
	})

	s.Equal([]shared.EventKind{
		shared.EventAssignment, shared.EventRejected, shared.EventAssignment, shared.EventAccepted,
	}, s.notifier.kinds())
}

func (s *BookingUseCaseTestSuite) TestCompleteAndPay() {
	b := s.createAndAssign(s.carla.ID())
	_, err := s.cmds.Accept(s.ctx, s.carlaActor, b.ID(), s.carla.ID())
	s.Require().NoError(err)

	s.Run("unknown consumed product is a validation error", func() {
		in := s.completeInput()
		in.ConsumedProductIDs = []string{"ghost"}
		_, err := s.cmds.Complete(s.ctx, s.carlaActor, b.ID(), s.carla.ID(), in)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	completed, err := s.cmds.Complete(s.ctx, s.carlaActor, b.ID(), s.carla.ID(), s.completeInput())
	s.Require().NoError(err)
	s.Equal(booking.StatusCompleted, completed.Status())
	s.Equal(int64(8500), completed.Deductions().Amount())
	s.Equal(booking.PaymentPending, completed.PaymentStatus())

	s.Run("earnings reflect the default rate and deductions", func() {
		sum, err := s.earnings.EarningsSummaryFor(s.ctx, s.carlaActor, s.carla.ID())
		s.Require().NoError(err)
		s.Require().Len(sum.Entries, 1)
		s.Equal(int64(60000), sum.Entries[0].SpecialistShare.Amount())
		s.Equal(int64(51500), sum.PendingTotal.Amount())
		s.True(sum.PaidTotal.IsZero())
	})

	s.Run("completing twice is an invalid transition", func() {
		_, err := s.cmds.Complete(s.ctx, s.carlaActor, b.ID(), s.carla.ID(), s.completeInput())
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Run("only admins mark paid, and only once", func() {
		_, err := s.cmds.MarkPaid(s.ctx, s.carlaActor, b.ID())
		s.True(errs.Is(err, errs.ErrForbidden))

		paid, err := s.cmds.MarkPaid(s.ctx, s.admin, b.ID())
		s.Require().NoError(err)
		s.True(paid.IsPaid())

		_, err = s.cmds.MarkPaid(s.ctx, s.admin, b.ID())
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})
}

func (s *BookingUseCaseTestSuite) TestReferralOnFirstCompletionOnly() {
	for range 2 {
		b := s.createAndAssign(s.carla.ID())
		_, err := s.cmds.Accept(s.ctx, s.carlaActor, b.ID(), s.carla.ID())
		s.Require().NoError(err)
		_, err = s.cmds.Complete(s.ctx, s.carlaActor, b.ID(), s.carla.ID(), s.completeInput())
		s.Require().NoError(err)
		s.clock.Add(time.Hour)
	}

	referrerActor := user.Actor{ID: s.referrer.ID(), Role: user.RoleSpecialist}
	sum, err := s.referral.ReferralSummaryFor(s.ctx, referrerActor, s.referrer.ID())
	s.Require().NoError(err)
	s.Require().Len(sum.Commissions, 1)
	s.Equal(s.carla.ID(), sum.Commissions[0].ReferredID())
	s.Equal(int64(12000), sum.Commissions[0].CommissionAmount().Amount())
	s.Equal(int64(12000), sum.PendingTotal.Amount())
}

func (s *BookingUseCaseTestSuite) TestMarkAllPaidForSpecialist() {
	for range 2 {
		b := s.createAndAssign(s.other.ID())
		otherActor := user.Actor{ID: s.other.ID(), Role: user.RoleSpecialist}
		_, err := s.cmds.Accept(s.ctx, otherActor, b.ID(), s.other.ID())
		s.Require().NoError(err)
		_, err = s.cmds.Complete(s.ctx, otherActor, b.ID(), s.other.ID(), s.completeInput())
		s.Require().NoError(err)
	}

	n, err := s.cmds.MarkAllPaidForSpecialist(s.ctx, s.admin, s.other.ID())
	s.Require().NoError(err)
	s.Equal(2, n)

	n, err = s.cmds.MarkAllPaidForSpecialist(s.ctx, s.admin, s.other.ID())
	s.Require().NoError(err)
	s.Zero(n, "already paid bookings are skipped")
}
