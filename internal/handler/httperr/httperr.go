package httperr

import (
	"net/http"

	"olive-mill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the error middleware and
// writes the JSON body.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCategory derives the status from the error's category marker.
// Uncategorized errors become 500 and their message is not exposed.
func AbortWithCategory(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	var detail any
	if status != http.StatusInternalServerError {
		detail = gin.H{"reason": err.Error()}
	}
	AbortWithError(c, status, err, msg, detail)
}

func StatusOf(err error) int {
	switch errs.Category(err) {
	case errs.ErrInput:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrCapacity:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
