//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/domain/specialist"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/infra/memory"
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/pkg/config"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/shared"
	"fieldservice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ProductRequestUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	uow      *memory.UoW
	clock    *clock.MockClock
	notifier *recordingNotifier
	cmds     commands.ProductRequestCommands

	admin user.Actor
	sp    *specialist.Specialist
	actor user.Actor
}

func (s *ProductRequestUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memory.NewUoW()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.notifier = &recordingNotifier{}

	policy, err := shared.NewPolicy(config.NewTestConfig())
	s.Require().NoError(err)
	s.cmds = commands.NewProductRequestUseCase(s.uow, s.clock, s.notifier, policy)

	s.uow.SeedProduct("lotion-250", 8500)
	s.uow.SeedProduct("comb-metal", 4000)
	s.sp = builder.NewSpecialistBuilder().BuildDomain()
	s.uow.SeedSpecialist(s.sp)

	s.admin = user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	s.actor = user.Actor{ID: s.sp.ID(), Role: user.RoleSpecialist}
}

func TestProductRequestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ProductRequestUseCaseTestSuite))
}

func (s *ProductRequestUseCaseTestSuite) kit() commands.CreateProductRequestInput {
	return commands.CreateProductRequestInput{SpecialistID: s.sp.ID(), FullKit: true}
}

func (s *ProductRequestUseCaseTestSuite) TestItemizedUsesCatalogPrices() {
	r, err := s.cmds.CreateProductRequest(s.ctx, s.actor, commands.CreateProductRequestInput{
		SpecialistID: s.sp.ID(),
		Items: []commands.ProductItemInput{
			{ProductID: "lotion-250", Name: "Loción", Quantity: 2},
			{ProductID: "comb-metal", Name: "Peine", Quantity: 1},
		},
	})
	s.Require().NoError(err)
	s.Equal(productrequest.KindItemized, r.Kind())
	s.Equal(int64(21000), r.Total().Amount())
	s.Equal(int64(21000), r.SpecialistContribution().Amount())
	s.True(r.StudioContribution().IsZero())
	s.Equal(productrequest.StatusPending, r.Status())
}

func (s *ProductRequestUseCaseTestSuite) TestValidation() {
	s.Run("unknown product", func() {
		_, err := s.cmds.CreateProductRequest(s.ctx, s.actor, commands.CreateProductRequestInput{
			SpecialistID: s.sp.ID(),
			Items:        []commands.ProductItemInput{{ProductID: "ghost", Quantity: 1}},
		})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("kit with items", func() {
		in := s.kit()
		in.Items = []commands.ProductItemInput{{ProductID: "lotion-250", Quantity: 1}}
		_, err := s.cmds.CreateProductRequest(s.ctx, s.actor, in)
		s.ErrorIs(err, commands.ErrAmbiguousKit)
	})

	s.Run("for another specialist", func() {
		in := s.kit()
		in.SpecialistID = uuid.New()
		_, err := s.cmds.CreateProductRequest(s.ctx, s.actor, in)
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *ProductRequestUseCaseTestSuite) TestFirstFullKitBenefit() {
	first, err := s.cmds.CreateProductRequest(s.ctx, s.actor, s.kit())
	s.Require().NoError(err)
	s.True(first.IsFirstKitBenefit())
	s.Equal(int64(150000), first.StudioContribution().Amount())
	s.Equal(int64(150000), first.SpecialistContribution().Amount())

	s.Run("a rejected first kit still consumes the benefit", func() {
		_, err := s.cmds.ResolveProductRequest(s.ctx, s.admin, first.ID(), productrequest.Reject, "out of stock")
		s.Require().NoError(err)

		second, err := s.cmds.CreateProductRequest(s.ctx, s.actor, s.kit())
		s.Require().NoError(err)
		s.False(second.IsFirstKitBenefit())
		s.True(second.StudioContribution().IsZero())
		s.Equal(int64(300000), second.SpecialistContribution().Amount())
	})
}

func (s *ProductRequestUseCaseTestSuite) TestResolve() {
	r, err := s.cmds.CreateProductRequest(s.ctx, s.actor, s.kit())
	s.Require().NoError(err)

	s.Run("specialists cannot resolve", func() {
		_, err := s.cmds.ResolveProductRequest(s.ctx, s.actor, r.ID(), productrequest.Approve, "")
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	approved, err := s.cmds.ResolveProductRequest(s.ctx, s.admin, r.ID(), productrequest.Approve, "ok")
	s.Require().NoError(err)
	s.Equal(productrequest.StatusApproved, approved.Status())
	s.Require().NotNil(approved.ResolvedBy())
	s.Equal(s.admin.ID, *approved.ResolvedBy())

	s.Run("resolving twice is an invalid transition", func() {
		_, err := s.cmds.ResolveProductRequest(s.ctx, s.admin, r.ID(), productrequest.Reject, "")
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Equal([]shared.EventKind{shared.EventProductRequest, shared.EventRequestApproved}, s.notifier.kinds())
}
