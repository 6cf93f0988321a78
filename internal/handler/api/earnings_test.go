//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fieldservice/internal/domain/booking"
	"fieldservice/internal/domain/earnings"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/handler/api"
	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/shared"
	"fieldservice/tests/common/httptest"
	commandsmock "fieldservice/tests/mock/commands"
	queriesmock "fieldservice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EarningsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockEarningsQueries

	actor user.Actor
}

func (s *EarningsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEarningsQueries(s.mockCtrl)
	h := api.NewEarningsHandler(s.mockCommands, s.mockQueries)

	s.actor = user.Actor{ID: uuid.New(), Role: user.RoleSpecialist}
	auth := func(c *gin.Context) {
		c.Set("user_id", s.actor.ID)
		c.Set("user_role", s.actor.Role)
		c.Next()
	}

	s.router.GET("/specialists/:id/earnings", auth, h.Summary)
	s.router.POST("/specialists/:id/earnings/mark-paid", auth, h.MarkAllPaid)
}

func (s *EarningsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEarningsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EarningsHandlerTestSuite))
}

func (s *EarningsHandlerTestSuite) TestSummary() {
	url := "/specialists/" + s.actor.ID.String() + "/earnings"
	rate := money.MustPercentage(60)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	completedAt := date.Add(15 * time.Hour)

	overdrawn := earnings.Entry{
		BookingID:       uuid.New(),
		ClientName:      "Laura Gómez",
		Date:            date,
		CompletedAt:     &completedAt,
		Gross:           money.New(100000),
		Rate:            rate,
		SpecialistShare: money.New(60000),
		StudioShare:     money.New(40000),
		Deductions:      money.New(70000),
		NetPayable:      money.New(-10000),
		PaymentStatus:   booking.PaymentPending,
		NeedsReview:     true,
	}

	s.Run("success: negative net is reported and flagged", func() {
		summary := earnings.Summary{
			SpecialistID:     s.actor.ID,
			Rate:             rate,
			PendingTotal:     money.New(-10000),
			GrossTotal:       money.New(100000),
			StudioShareTotal: money.New(40000),
			DeductionsTotal:  money.New(70000),
			CompletedCount:   1,
			NeedsReviewCount: 1,
			Entries:          []earnings.Entry{overdrawn},
		}
		s.mockQueries.EXPECT().EarningsSummaryFor(gomock.Any(), s.actor, s.actor.ID).Return(summary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var got resdto.EarningsSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		want := resdto.EarningsSummaryResponse{
			SpecialistID:     s.actor.ID.String(),
			Rate:             "60",
			PendingTotal:     -10000,
			PaidTotal:        0,
			GrossTotal:       100000,
			StudioShareTotal: 40000,
			DeductionsTotal:  70000,
			CompletedCount:   1,
			NeedsReviewCount: 1,
			Entries: []resdto.EarningsEntryResponse{{
				BookingID:       overdrawn.BookingID.String(),
				ClientName:      "Laura Gómez",
				Date:            date,
				CompletedAt:     &completedAt,
				Gross:           100000,
				Rate:            "60",
				SpecialistShare: 60000,
				StudioShare:     40000,
				Deductions:      70000,
				NetPayable:      -10000,
				PaymentStatus:   "pending",
				NeedsReview:     true,
			}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("earnings mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: no completed bookings gives an empty list", func() {
		s.mockQueries.EXPECT().EarningsSummaryFor(gomock.Any(), gomock.Any(), s.actor.ID).
			Return(earnings.Summary{SpecialistID: s.actor.ID, Rate: money.MustPercentage(50)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"entries":[]`)
	})

	s.Run("error: 403 on another specialist's earnings", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().EarningsSummaryFor(gomock.Any(), gomock.Any(), other).
			Return(earnings.Summary{}, errs.Mark(errs.New("not your earnings"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/specialists/"+other.String()+"/earnings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 422 when a booking cannot be priced", func() {
		s.mockQueries.EXPECT().EarningsSummaryFor(gomock.Any(), gomock.Any(), s.actor.ID).
			Return(earnings.Summary{}, errs.Mark(errs.New("service not priced"), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *EarningsHandlerTestSuite) TestMarkAllPaid() {
	url := "/specialists/" + s.actor.ID.String() + "/earnings/mark-paid"

	s.Run("success: returns how many bookings were paid", func() {
		s.mockCommands.EXPECT().MarkAllPaidForSpecialist(gomock.Any(), s.actor, s.actor.ID).Return(2, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.BulkPaidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Updated)
	})

	s.Run("error: 403 for non-admins", func() {
		s.mockCommands.EXPECT().MarkAllPaidForSpecialist(gomock.Any(), gomock.Any(), s.actor.ID).Return(0, shared.ErrAdminOnly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 400 on a malformed specialist id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/specialists/not-a-uuid/earnings/mark-paid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
