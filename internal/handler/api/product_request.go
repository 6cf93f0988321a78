package api

import (
	"net/http"

	"fieldservice/internal/domain/productrequest"
	reqdto "fieldservice/internal/handler/dto/request"
	resdto "fieldservice/internal/handler/dto/response"
	"fieldservice/internal/handler/httperr"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductRequestHandler struct {
	cmds commands.ProductRequestCommands
	q    queries.ProductRequestQueries
}

func NewProductRequestHandler(cmds commands.ProductRequestCommands, q queries.ProductRequestQueries) *ProductRequestHandler {
	return &ProductRequestHandler{cmds: cmds, q: q}
}

// @Summary Request products
// @Description Itemized request or a full kit. The first full kit of a specialist is half paid by the studio.
// @Tags product-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequestRequest true "Product request"
// @Success 201 {object} resdto.ProductRequestResponse
// @Failure 422 {object} httperr.Response
// @Router /product-requests [post]
func (h *ProductRequestHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateProductRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	pr, err := h.cmds.CreateProductRequest(c.Request.Context(), actor, req.ToInput(actor.ID))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/product-requests/"+pr.ID().String())
	c.JSON(http.StatusCreated, resdto.FromProductRequest(pr))
}

// ListByStatus defaults to pending requests.
func (h *ProductRequestHandler) ListByStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	status := productrequest.StatusPending
	if raw := c.Query("status"); raw != "" {
		parsed, err := productrequest.ParseStatus(raw)
		if err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		status = parsed
	}
	rs, err := h.q.ProductRequestsByStatus(c.Request.Context(), actor, status)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_requests": resdto.FromProductRequests(rs)})
}

func (h *ProductRequestHandler) ListForSpecialist(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	rs, err := h.q.ProductRequestsFor(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_requests": resdto.FromProductRequests(rs)})
}

// @Summary Resolve product request
// @Tags product-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product request ID"
// @Param request body reqdto.ResolveProductRequestRequest true "approve or reject"
// @Success 200 {object} resdto.ProductRequestResponse
// @Failure 409 {object} httperr.Response "already resolved"
// @Router /product-requests/{id}/resolve [post]
func (h *ProductRequestHandler) Resolve(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ResolveProductRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	decision, err := req.ToDecision()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	pr, err := h.cmds.ResolveProductRequest(c.Request.Context(), actor, id, decision, req.Notes)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductRequest(pr))
}
