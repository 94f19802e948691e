package middleware

import (
	"log/slog"
	"net/http"

	"olive-mill/internal/handler/httperr"
	"olive-mill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler recorded one
// without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			if ge.IsType(gin.ErrorTypePublic) {
				if resp, ok := ge.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
					slog.Error("request failed",
						"request_id", GetRequestID(c),
						"error", ge.Err.Error(),
						"stack", errs.ExtractStackLines(ge.Err, 12))
				}
			}
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if ge.IsType(gin.ErrorTypePublic) {
				if resp, ok := ge.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
