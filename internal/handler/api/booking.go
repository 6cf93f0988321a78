package api

import (
	"net/http"

	reqdto "fieldservice/internal/handler/dto/request"
	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/handler/httperr"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a pending booking. Only admins may suggest a specialist.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	b, err := h.cmds.CreateBooking(c.Request.Context(), actor, in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+b.ID().String())
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	b, err := h.q.GetBooking(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Assign booking
// @Description Admin assigns (or reassigns) a booking and starts the response window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignRequest true "Specialist"
// @Success 200 {object} resdto.BookingResponse
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/assign [post]
func (h *BookingHandler) Assign(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.cmds.Assign(c.Request.Context(), actor, id, req.SpecialistID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Accept booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 409 {object} httperr.Response "invalid_transition or stale_assignment"
// @Router /bookings/{id}/accept [post]
func (h *BookingHandler) Accept(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AcceptRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	b, err := h.cmds.Accept(c.Request.Context(), actor, id, req.Resolve(actor.ID))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Reject booking
// @Description The booking returns to pending and the specialist's name is appended to its rejection history
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RejectRequest false "Reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 409 {object} httperr.Response "invalid_transition or stale_assignment"
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RejectRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	b, err := h.cmds.Reject(c.Request.Context(), actor, id, req.Resolve(actor.ID), req.Reason)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Complete booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CompleteRequest true "Completion details"
// @Success 200 {object} resdto.BookingResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.cmds.Complete(c.Request.Context(), actor, id, req.Resolve(actor.ID), req.ToDetails())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

func (h *BookingHandler) MarkPaid(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	b, err := h.cmds.MarkPaid(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// RejectionHistory returns the full history, or the count for one name when
// ?specialist= is given.
func (h *BookingHandler) RejectionHistory(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if name := c.Query("specialist"); name != "" {
		n, err := h.q.RejectionCount(c.Request.Context(), actor, id, name)
		if err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"booking_id": id.String(), "specialist": name, "count": n})
		return
	}
	history, err := h.q.RejectionHistoryOf(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if history == nil {
		history = []string{}
	}
	c.JSON(http.StatusOK, resdto.RejectionHistoryResponse{BookingID: id.String(), RejectionHistory: history})
}

// @Summary Pending assignments of a specialist
// @Description Assigned bookings awaiting an answer, ordered by deadline
// @Tags specialists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Specialist ID"
// @Success 200 {array} resdto.PendingBookingResponse
// @Router /specialists/{id}/pending [get]
func (h *BookingHandler) PendingForSpecialist(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.PendingForSpecialist(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromPendingViews(views)})
}

func (h *BookingHandler) RejectionsForSpecialist(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.RejectionsFor(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejections": resdto.FromRejectionViews(views)})
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
