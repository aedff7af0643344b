package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"studiobook/internal/api"
	"studiobook/internal/auth"
	"studiobook/internal/studio"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// rejectionReason maps policy errors to the machine-readable reasons the
// club UI switches on.
func rejectionReason(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrClosedSunday):
		return http.StatusConflict, "closed_sunday", "Studio is closed on Sundays"
	case errors.Is(err, ErrSlotTaken):
		return http.StatusConflict, "slot_taken", "This slot is already booked"
	case errors.Is(err, ErrPastDate):
		return http.StatusBadRequest, "past_date", "Cannot book a past date"
	case errors.Is(err, ErrSuspended):
		return http.StatusForbidden, "suspended", "Booking privileges are suspended"
	case errors.Is(err, ErrNoHoursLeft):
		return http.StatusConflict, "no_hours_left", "No studio hours left this month"
	case errors.Is(err, ErrInvalidSlot):
		return http.StatusBadRequest, "invalid_slot", "Not a valid slot start time"
	case errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest, "invalid_date", "Invalid date, use YYYY-MM-DD"
	}
	return 0, "", ""
}

// RequestBooking godoc
// @Summary      Book a studio slot
// @Description  Runs the booking policy checks and creates a confirmed booking consuming 2h of the monthly allocation.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      BookSlotRequest  true  "Slot request"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.RejectionResponse
// @Failure      403      {object}  api.RejectionResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.RejectionResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) RequestBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.RequestBooking(c.Request.Context(), userID, req)
	if err != nil {
		if status, reason, msg := rejectionReason(err); reason != "" {
			c.JSON(status, api.RejectionResponse{Error: msg, Reason: reason})
			return
		}
		if errors.Is(err, studio.ErrStudioNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Studio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, b)
}

// RequestCancellation godoc
// @Summary      Cancel a booking
// @Description  Applies the tiered cancellation policy: >=24h restores hours, 6-24h forfeits, <6h forfeits and issues a strike.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  CancellationResult
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) RequestCancellation(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	res, err := h.service.RequestCancellation(c.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only cancel your own bookings"})
		case errors.Is(err, ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Booking already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingWithDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetAllocation godoc
// @Summary      Monthly allocation
// @Description  Returns tier hours, hours used and hours remaining for the current calendar month.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Allocation
// @Failure      500  {object}  api.ErrorResponse
// @Router       /allocation [get]
func (h *Handler) GetAllocation(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	alloc, err := h.service.GetAllocation(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute allocation"})
		return
	}

	c.JSON(http.StatusOK, alloc)
}

// ListBookingsByStudio godoc
// @Summary      List bookings by studio
// @Description  Returns all bookings for a studio. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        studioID  path      int  true  "Studio ID"
// @Success      200       {array}   BookingWithDetails
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /admin/studios/{studioID}/bookings [get]
func (h *Handler) ListBookingsByStudio(c *gin.Context) {
	studioID, err := strconv.Atoi(c.Param("studioID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid studio ID"})
		return
	}

	bookings, err := h.service.GetBookingsByStudio(c.Request.Context(), studioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingAnalytics godoc
// @Summary      Booking analytics
// @Description  Returns aggregated booking stats. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        group_by  query     string  false  "Group by dimension (day or studio)"
// @Param        from      query     string  true   "Start date (YYYY-MM-DD)"
// @Param        to        query     string  true   "End date (YYYY-MM-DD)"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /admin/analytics/bookings [get]
func (h *Handler) GetBookingAnalytics(c *gin.Context) {
	groupBy := c.DefaultQuery("group_by", "day")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from and to query params are required"})
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from format, use YYYY-MM-DD"})
		return
	}

	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to format, use YYYY-MM-DD"})
		return
	}

	switch groupBy {
	case "day":
		stats, err := h.service.StatsByDay(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"group_by": "day", "from": fromStr, "to": toStr, "data": stats})
	case "studio":
		stats, err := h.service.StatsByStudio(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"group_by": "studio", "from": fromStr, "to": toStr, "data": stats})
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "group_by must be 'day' or 'studio'"})
	}
}
