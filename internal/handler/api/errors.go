package api

import (
	"errors"
	"net/http"

	"olive-mill/internal/domain/capacity"
	"olive-mill/internal/domain/schedule"
	resdto "olive-mill/internal/handler/dto/response"
	"olive-mill/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// respondError maps a use case error onto a status and aborts. Conflicts that
// carry structured detail expose it in the body.
func respondError(c *gin.Context, err error, msg string) {
	var slot *schedule.SlotConflictError
	if errors.As(err, &slot) {
		httperr.AbortWithError(c, http.StatusConflict, err, msg, resdto.FromSlotConflict(slot))
		return
	}
	var exceeded *capacity.CapacityExceededError
	if errors.As(err, &exceeded) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, resdto.FromCapacityExceeded(exceeded))
		return
	}

	httperr.AbortWithCategory(c, err, msg)
}

type validatedRequest interface {
	Validate() error
}

// bindValidated binds the JSON body and runs the request's own checks,
// aborting with 400 on either failure.
func bindValidated(c *gin.Context, req validatedRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
