package api

import (
	"net/http"

	reqdto "olive-mill/internal/handler/dto/request"
	resdto "olive-mill/internal/handler/dto/response"
	"olive-mill/internal/handler/httperr"
	"olive-mill/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TankHandler struct {
	cmds commands.TankCommands
}

func NewTankHandler(cmds commands.TankCommands) *TankHandler {
	return &TankHandler{cmds: cmds}
}

// @Summary Check tank
// @Description Check whether a quantity of a product for an owner fits into a tank
// @Tags tanks
// @Accept json
// @Produce json
// @Param id path string true "Tank ID"
// @Param request body reqdto.TankCheckRequest true "Intended fill"
// @Success 200 {object} resdto.TankCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /tanks/{id}/check [post]
func (h *TankHandler) Check(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.TankCheckRequest
	if !bindValidated(c, &req) {
		return
	}
	result, err := h.cmds.Check(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		respondError(c, err, "Tank check failed")
		return
	}
	res, err := resdto.FromTankCheck(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
