//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fieldservice/internal/domain/money"
	"fieldservice/internal/domain/referral"
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

type ReferralHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReferralCommands
	mockQueries  *queriesmock.MockReferralQueries

	admin user.Actor
}

func (s *ReferralHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReferralCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReferralQueries(s.mockCtrl)
	h := api.NewReferralHandler(s.mockCommands, s.mockQueries)

	s.admin = user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	auth := func(c *gin.Context) {
		c.Set("user_id", s.admin.ID)
		c.Set("user_role", s.admin.Role)
		c.Next()
	}

	s.router.GET("/specialists/:id/referrals", auth, h.Summary)
	s.router.POST("/specialists/:id/referrals/mark-paid", auth, h.MarkAllPaid)
	s.router.POST("/referral-commissions/:id/mark-paid", auth, h.MarkPaid)
}

func (s *ReferralHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReferralHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReferralHandlerTestSuite))
}

func newTestCommission(referrer uuid.UUID, status referral.Status, at time.Time) *referral.Commission {
	var paidAt *time.Time
	if status == referral.StatusPaid {
		paidAt = &at
	}
	return referral.ReconstructCommission(uuid.New(), referrer, uuid.New(), uuid.New(),
		money.New(120000), money.New(12000), status, at, paidAt)
}

func (s *ReferralHandlerTestSuite) TestSummary() {
	referrer := uuid.New()
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	s.Run("success: totals per payment status", func() {
		cs := []*referral.Commission{
			newTestCommission(referrer, referral.StatusPending, at),
			newTestCommission(referrer, referral.StatusPaid, at),
		}
		s.mockQueries.EXPECT().ReferralSummaryFor(gomock.Any(), s.admin, referrer).
			Return(referral.Summarize(referrer, cs), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/specialists/"+referrer.String()+"/referrals", nil, "")

		var body resdto.ReferralSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(referrer.String(), body.ReferrerID)
		s.Equal(int64(12000), body.PendingTotal)
		s.Equal(int64(12000), body.PaidTotal)
		s.Len(body.Commissions, 2)
	})

	s.Run("error: 400 on invalid referrer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/specialists/nope/referrals", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReferralHandlerTestSuite) TestMarkPaid() {
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	paid := newTestCommission(uuid.New(), referral.StatusPaid, at)
	url := "/referral-commissions/" + paid.ID().String() + "/mark-paid"

	s.Run("success: returns the paid commission", func() {
		s.mockCommands.EXPECT().MarkReferralPaid(gomock.Any(), s.admin, paid.ID()).Return(paid, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var got resdto.CommissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		if diff := cmp.Diff(*resdto.FromCommission(paid), got); diff != "" {
			s.T().Errorf("commission mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: usecase errors map to statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "already paid", err: referral.ErrAlreadyPaid, status: http.StatusConflict, code: api.CodeInvalidTransition},
			{name: "unknown commission", err: errs.Mark(errs.New("referral commission not found"), errs.ErrNotFound), status: http.StatusNotFound, code: api.CodeNotFound},
			{name: "store failure", err: errors.New("connection reset"), status: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().MarkReferralPaid(gomock.Any(), gomock.Any(), paid.ID()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
				if tc.code != "" {
					s.Contains(rec.Body.String(), `"code":"`+tc.code+`"`)
				}
			})
		}
	})
}

func (s *ReferralHandlerTestSuite) TestMarkAllPaid() {
	referrer := uuid.New()
	url := "/specialists/" + referrer.String() + "/referrals/mark-paid"

	s.Run("success: returns how many were paid", func() {
		s.mockCommands.EXPECT().MarkAllPaidForReferrer(gomock.Any(), s.admin, referrer).Return(3, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.BulkPaidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Updated)
	})

	s.Run("error: 403 for non-admins", func() {
		s.mockCommands.EXPECT().MarkAllPaidForReferrer(gomock.Any(), gomock.Any(), referrer).
			Return(0, shared.ErrAdminOnly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}
