//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fieldservice/internal/domain/productrequest"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/handler/api"
	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/usecase/commands"
	"fieldservice/tests/common/builder"
	"fieldservice/tests/common/httptest"
	commandsmock "fieldservice/tests/mock/commands"
	queriesmock "fieldservice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductRequestCommands
	mockQueries  *queriesmock.MockProductRequestQueries

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *ProductRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductRequestQueries(s.mockCtrl)
	h := api.NewProductRequestHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleSpecialist

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/product-requests", authMiddleware, h.Create)
	s.router.GET("/product-requests", authMiddleware, h.ListByStatus)
	s.router.POST("/product-requests/:id/resolve", authMiddleware, h.Resolve)
}

func (s *ProductRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductRequestHandlerTestSuite))
}

func (s *ProductRequestHandlerTestSuite) TestCreate() {
	url := "/product-requests"

	s.Run("success: first full kit is split with the studio", func() {
		pr, err := builder.NewProductRequestBuilder().With(func(b *builder.ProductRequestBuilder) {
			b.SpecialistID = s.actorID
			b.FullKit = true
		}).BuildDomain()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().CreateProductRequest(gomock.Any(), gomock.Any(), commands.CreateProductRequestInput{
			SpecialistID: s.actorID,
			FullKit:      true,
			Items:        []commands.ProductItemInput{},
		}).Return(pr, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"full_kit": true}, "")

		var body resdto.ProductRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("full_kit", body.Kind)
		s.True(body.IsFirstKitBenefit)
		s.Equal(int64(150000), body.StudioContribution)
		s.Equal(int64(150000), body.SpecialistContribution)
		s.Empty(body.Items)
	})

	s.Run("error: 400 when an item quantity is missing", func() {
		body := map[string]any{"items": []map[string]any{{"product_id": "lotion-250"}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 when the request has neither items nor kit", func() {
		s.mockCommands.EXPECT().CreateProductRequest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, productrequest.ErrItemsRequired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *ProductRequestHandlerTestSuite) TestListByStatus() {
	s.Run("defaults to pending", func() {
		s.mockQueries.EXPECT().ProductRequestsByStatus(gomock.Any(), gomock.Any(), productrequest.StatusPending).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/product-requests", nil, "")

		var body struct {
			ProductRequests []resdto.ProductRequestResponse `json:"product_requests"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.ProductRequests)
	})

	s.Run("rejects unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/product-requests?status=lost", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *ProductRequestHandlerTestSuite) TestResolve() {
	id := uuid.New()
	url := "/product-requests/" + id.String() + "/resolve"

	s.Run("error: 422 on unknown decision", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "maybe"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 409 when already resolved", func() {
		s.mockCommands.EXPECT().ResolveProductRequest(gomock.Any(), gomock.Any(), id, productrequest.Approve, "ok").
			Return(nil, productrequest.ErrAlreadyResolved).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve", "notes": "ok"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		s.Contains(rec.Body.String(), api.CodeInvalidTransition)
	})
}
