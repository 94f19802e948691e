package api

import (
	"net/http"
	"strconv"

	"olive-mill/internal/domain/catalog"
	reqdto "olive-mill/internal/handler/dto/request"
	resdto "olive-mill/internal/handler/dto/response"
	"olive-mill/internal/handler/httperr"
	"olive-mill/internal/handler/middleware"
	"olive-mill/internal/pkg/errs"
	"olive-mill/internal/usecase/commands"
	"olive-mill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidProduct = errs.New("product id must be positive")

type MappingHandler struct {
	cmds commands.MappingCommands
	q    queries.MappingQueries
}

func NewMappingHandler(cmds commands.MappingCommands, q queries.MappingQueries) *MappingHandler {
	return &MappingHandler{cmds: cmds, q: q}
}

// @Summary Set default mapping
// @Description Make output_product the default for input_product. Any previous default is cleared.
// @Tags mappings
// @Accept json
// @Produce json
// @Param request body reqdto.SetDefaultMappingRequest true "Mapping pair"
// @Success 200 {object} resdto.ResolvedMappingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /mappings/default [put]
func (h *MappingHandler) SetDefault(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.SetDefaultMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input := catalog.ProductID(req.InputProduct)
	if err := h.cmds.SetDefault(c.Request.Context(), input, catalog.ProductID(req.OutputProduct), act); err != nil {
		respondError(c, err, "Set default mapping failed")
		return
	}
	h.renderResolved(c, input)
}

// @Summary Resolve output product
// @Description Output product for an input product: the default, else the lowest output id
// @Tags mappings
// @Produce json
// @Param input path int true "Input product ID"
// @Success 200 {object} resdto.ResolvedMappingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /mappings/{input}/resolve [get]
func (h *MappingHandler) Resolve(c *gin.Context) {
	input, err := strconv.ParseInt(c.Param("input"), 10, 64)
	if err == nil && input <= 0 {
		err = errInvalidProduct
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid input product", nil)
		return
	}
	h.renderResolved(c, catalog.ProductID(input))
}

func (h *MappingHandler) renderResolved(c *gin.Context, input catalog.ProductID) {
	resolved, err := h.q.Resolve(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Resolve mapping failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResolvedMapping(resolved))
}
