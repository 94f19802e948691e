package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "olive-mill/internal/handler/dto/request"
	resdto "olive-mill/internal/handler/dto/response"
	"olive-mill/internal/handler/httperr"
	"olive-mill/internal/handler/middleware"
	"olive-mill/internal/pkg/errs"
	"olive-mill/internal/usecase/commands"
	"olive-mill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("actor missing from context")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a slot on a production line. The slot end is derived from quantity and line throughput.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Actor ID"
// @Param X-Actor-Role header string true "client or operator"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindValidated(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), act)
	if err != nil {
		respondError(c, err, "Create booking failed")
		return
	}
	h.renderBooking(c, http.StatusCreated, result.BookingID)
}

// @Summary Get booking
// @Description Clients only see their own bookings
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.renderBooking(c, http.StatusOK, id)
}

// @Summary Update booking
// @Description Change line, product, quantity, start or contact. A reschedule marks the booking modified.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateBookingRequest
	if !bindValidated(c, &req) {
		return
	}
	if err = h.cmds.Update(c.Request.Context(), id, req.ToCommand(), act); err != nil {
		respondError(c, err, "Update booking failed")
		return
	}
	h.renderBooking(c, http.StatusOK, id)
}

// @Summary Correct booking end
// @Description Operator override of the computed end time
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CorrectEndRequest true "New end"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/correct-end [post]
func (h *BookingHandler) CorrectEnd(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.CorrectEndRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.CorrectEnd(c.Request.Context(), id, req.End, act); err != nil {
		respondError(c, err, "Correct end failed")
		return
	}
	h.renderBooking(c, http.StatusOK, id)
}

// @Summary Close booking
// @Description Close a booking once its intake is registered. Closing twice is rejected.
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/close [post]
func (h *BookingHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	if err = h.cmds.Close(c.Request.Context(), id, act); err != nil {
		respondError(c, err, "Close booking failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List line bookings
// @Description List bookings on a line ordered by start with keyset pagination. requester_id is omitted unless the caller is an operator or the requester.
// @Tags bookings
// @Produce json
// @Param id path string true "Line ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /lines/{id}/bookings [get]
func (h *BookingHandler) ListByLine(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid line id", nil)
		return
	}
	var window queries.TimeWindow
	if window.From, err = parseTimeQuery(c, "from"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from", nil)
		return
	}
	if window.To, err = parseTimeQuery(c, "to"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to", nil)
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}

	items, next, err := h.q.ListByLine(c.Request.Context(), lineID, window, cursor, limit, act)
	if err != nil {
		respondError(c, err, "List bookings failed")
		return
	}
	list, err := resdto.FromBookingList(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"bookings": list}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) renderBooking(c *gin.Context, status int, id uuid.UUID) {
	act, _ := middleware.GetActor(c)
	view, err := h.q.GetByID(c.Request.Context(), id, act)
	if err != nil {
		respondError(c, err, "Failed to load booking")
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(status, res)
}

func parseTimeQuery(c *gin.Context, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}
