package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "cafe-reservation/internal/handler/dto/request"
	resdto "cafe-reservation/internal/handler/dto/response"
	"cafe-reservation/internal/handler/httperr"
	"cafe-reservation/internal/handler/middleware"
	"cafe-reservation/internal/usecase/commands"
	"cafe-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book one or more tables for specific slots on a future date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), actor, input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Partially update a booking: fields, status, or active flag
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Booking patch"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.bookingCommands.Update(c.Request.Context(), actor, id, patch)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID; customers only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, queries.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings; customers see their own, staff may see all
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cafeId query string false "Filter by cafe"
// @Param userId query string false "Filter by user (staff only)"
// @Param showAll query bool false "Include other users' bookings (staff only)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	params, err := parseListParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.bookingQueries.List(c.Request.Context(), actor, params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func parseListParams(c *gin.Context) (queries.ListBookingsParams, error) {
	var params queries.ListBookingsParams

	if raw := c.Query("cafeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return params, errors.New("invalid cafeId format")
		}
		params.CafeID = &id
	}
	if raw := c.Query("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return params, errors.New("invalid userId format")
		}
		params.UserID = &id
	}
	if raw := c.Query("showAll"); raw != "" {
		showAll, err := strconv.ParseBool(raw)
		if err != nil {
			return params, errors.New("invalid showAll format")
		}
		params.ShowAll = showAll
	}

	return params, nil
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCafeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cafe not found", nil)
	case errors.Is(err, commands.ErrTableNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Table not found", nil)
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrTableAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Table is already booked for this slot", nil)
	case errors.Is(err, commands.ErrUserAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "You already have a booking in this time window", nil)
	case errors.Is(err, commands.ErrInsufficientPermissions):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, commands.ErrInvalidGuestNumber),
		errors.Is(err, commands.ErrInvalidAssignments),
		errors.Is(err, commands.ErrInvalidNote):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
	case errors.Is(err, commands.ErrCafeInactive),
		errors.Is(err, commands.ErrTableInactive),
		errors.Is(err, commands.ErrSlotInactive),
		errors.Is(err, commands.ErrBookingInactive),
		errors.Is(err, commands.ErrNotEnoughSeats),
		errors.Is(err, commands.ErrBookingPastDate),
		errors.Is(err, commands.ErrInvalidStatusTransition),
		errors.Is(err, commands.ErrCannotActivateStatus),
		errors.Is(err, commands.ErrCannotDeactivateStatus),
		errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
