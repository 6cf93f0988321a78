package api

import (
	"net/http"

	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/usecase/assignment"
	"fieldservice/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	engine assignment.Engine
}

func NewAdminHandler(engine assignment.Engine) *AdminHandler {
	return &AdminHandler{engine: engine}
}

// @Summary Run the expiry scan now
// @Description Releases every assigned booking whose response window has passed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExpiryScanResponse
// @Router /admin/expiry-scan [post]
func (h *AdminHandler) ExpiryScan(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := shared.RequireAdmin(actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := h.engine.TickExpiryScan(c.Request.Context())
	if err != nil && res.Scanned == 0 {
		abortWithUsecaseError(c, err)
		return
	}
	// Per-booking failures do not fail the scan; they are counted.
	c.JSON(http.StatusOK, resdto.FromScanResult(res))
}
