package api

import (
	"log/slog"
	"net/http"

	"fieldservice/internal/domain/user"
	"fieldservice/internal/handler/httperr"
	"fieldservice/internal/handler/middleware"
	"fieldservice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CodeInvalidTransition = "invalid_transition"
	CodeStaleAssignment   = "stale_assignment"
	CodeValidation        = "validation_failed"
	CodeNotFound          = "not_found"
	CodeForbidden         = "forbidden"
)

var errUnauthenticated = errs.New("no authenticated actor in context")

// abortWithUsecaseError maps the shared error taxonomy onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeNotFound, "Not found", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithCode(c, http.StatusForbidden, err, CodeForbidden, "Access denied", nil)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, CodeValidation, "Validation failed", errs.Cause(err).Error())
	case errs.Is(err, errs.ErrStaleAssignment):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeStaleAssignment, "Booking is no longer assigned to this specialist", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeInvalidTransition, "Operation not allowed in the current state", errs.Cause(err).Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(), "request_id", middleware.GetRequestID(c), "error", err.Error(), "stack", errs.ExtractStackLines(err, 5))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func actorOrAbort(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return actor, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
