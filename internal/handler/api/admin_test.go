//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"fieldservice/internal/domain/user"
	"fieldservice/internal/handler/api"
	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/usecase/assignment"
	"fieldservice/tests/common/httptest"
	assignmentmock "fieldservice/tests/mock/assignment"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(t *testing.T, engine assignment.Engine, role user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := api.NewAdminHandler(engine)
	r.POST("/admin/expiry-scan", func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_role", role)
		c.Next()
	}, h.ExpiryScan)
	return r
}

func TestAdminHandler_ExpiryScan(t *testing.T) {
	t.Run("returns the scan counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := assignmentmock.NewMockEngine(ctrl)
		engine.EXPECT().TickExpiryScan(gomock.Any()).
			Return(assignment.ScanResult{Scanned: 3, Released: 1, Skipped: 1, FallbackRecorded: 1}, nil)

		rec := httptest.PerformRequest(t, newAdminRouter(t, engine, user.RoleAdmin), http.MethodPost, "/admin/expiry-scan", nil, "")

		var got resdto.ExpiryScanResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		want := resdto.ExpiryScanResponse{Scanned: 3, Released: 1, Skipped: 1, FallbackRecorded: 1}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("scan response mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial failures still answer 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := assignmentmock.NewMockEngine(ctrl)
		engine.EXPECT().TickExpiryScan(gomock.Any()).
			Return(assignment.ScanResult{Scanned: 2, Released: 1, Failed: 1}, errors.New("booking b2: connection reset"))

		rec := httptest.PerformRequest(t, newAdminRouter(t, engine, user.RoleAdmin), http.MethodPost, "/admin/expiry-scan", nil, "")

		var got resdto.ExpiryScanResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, 1, got.Failed)
	})

	t.Run("listing fails before any booking is scanned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := assignmentmock.NewMockEngine(ctrl)
		engine.EXPECT().TickExpiryScan(gomock.Any()).Return(assignment.ScanResult{}, errors.New("database down"))

		rec := httptest.PerformRequest(t, newAdminRouter(t, engine, user.RoleAdmin), http.MethodPost, "/admin/expiry-scan", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal error")
	})

	t.Run("specialists are forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := assignmentmock.NewMockEngine(ctrl)

		rec := httptest.PerformRequest(t, newAdminRouter(t, engine, user.RoleSpecialist), http.MethodPost, "/admin/expiry-scan", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Access denied")
	})
}
