package api

import (
	"net/http"

	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	cmds commands.ReferralCommands
	q    queries.ReferralQueries
}

func NewReferralHandler(cmds commands.ReferralCommands, q queries.ReferralQueries) *ReferralHandler {
	return &ReferralHandler{cmds: cmds, q: q}
}

// @Summary Referral commissions of a referrer
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referrer specialist ID"
// @Success 200 {object} resdto.ReferralSummaryResponse
// @Router /specialists/{id}/referrals [get]
func (h *ReferralHandler) Summary(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	s, err := h.q.ReferralSummaryFor(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReferralSummary(s))
}

func (h *ReferralHandler) MarkPaid(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	cm, err := h.cmds.MarkReferralPaid(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommission(cm))
}

func (h *ReferralHandler) MarkAllPaid(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	n, err := h.cmds.MarkAllPaidForReferrer(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BulkPaidResponse{Updated: n})
}
