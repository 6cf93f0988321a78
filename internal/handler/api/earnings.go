package api

import (
	"net/http"

	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EarningsHandler struct {
	cmds commands.BookingCommands
	q    queries.EarningsQueries
}

func NewEarningsHandler(cmds commands.BookingCommands, q queries.EarningsQueries) *EarningsHandler {
	return &EarningsHandler{cmds: cmds, q: q}
}

// @Summary Earnings summary
// @Description Completed bookings of a specialist split into pending and paid totals
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Specialist ID"
// @Success 200 {object} resdto.EarningsSummaryResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response "a completed booking has no price and an unpriced service"
// @Router /specialists/{id}/earnings [get]
func (h *EarningsHandler) Summary(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	summary, err := h.q.EarningsSummaryFor(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromEarningsSummary(summary)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *EarningsHandler) MarkAllPaid(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	n, err := h.cmds.MarkAllPaidForSpecialist(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BulkPaidResponse{Updated: n})
}
