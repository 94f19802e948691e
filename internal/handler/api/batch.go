package api

import (
	"net/http"

	reqdto "olive-mill/internal/handler/dto/request"
	resdto "olive-mill/internal/handler/dto/response"
	"olive-mill/internal/handler/httperr"
	"olive-mill/internal/handler/middleware"
	"olive-mill/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BatchHandler struct {
	cmds commands.BatchCommands
}

func NewBatchHandler(cmds commands.BatchCommands) *BatchHandler {
	return &BatchHandler{cmds: cmds}
}

// @Summary Plan milling batch
// @Description Aggregate intake lots without writing anything. Returns totals, byproduct estimate and resolved output product.
// @Tags batches
// @Accept json
// @Produce json
// @Param request body reqdto.PlanBatchRequest true "Lots to aggregate"
// @Success 200 {object} resdto.BatchPlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /batches/plan [post]
func (h *BatchHandler) Plan(c *gin.Context) {
	var req reqdto.PlanBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	plan, err := h.cmds.Plan(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err, "Plan batch failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBatchPlan(plan))
}

// @Summary Commit milling batch
// @Description Mill the lots into a tank. Yield outside the admissible band is reported as a warning only.
// @Tags batches
// @Accept json
// @Produce json
// @Param request body reqdto.CommitBatchRequest true "Batch to commit"
// @Success 201 {object} resdto.BatchCommitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /batches [post]
func (h *BatchHandler) Commit(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.CommitBatchRequest
	if !bindValidated(c, &req) {
		return
	}
	result, err := h.cmds.Commit(c.Request.Context(), req.ToCommand(), act)
	if err != nil {
		respondError(c, err, "Commit batch failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommitResult(result))
}
