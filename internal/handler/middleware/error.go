package middleware

import (
	"log/slog"
	"net/http"

	"fieldservice/internal/handler/httperr"
	"fieldservice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const codeInternal = "internal_error"

func internalErrorResponse() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Error.Code = codeInternal
	return resp
}

// ErrorHandler writes a response for handlers that recorded errors on the
// context without writing one themselves. The newest public error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.ErrorContext(c.Request.Context(), "unhandled request error",
			"request_id", GetRequestID(c), "path", c.FullPath(), "errors", c.Errors.Errors())
		c.JSON(http.StatusInternalServerError, internalErrorResponse())
	}
}

// CustomRecovery turns a panic into a 500 in the usual error envelope.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err := errs.Newf("panic: %v", r)
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"request_id", GetRequestID(c), "path", c.Request.URL.Path,
				"error", err.Error(), "stack", errs.ExtractStackLines(err, 8))
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse())
		}()
		c.Next()
	}
}
