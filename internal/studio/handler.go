package studio

import (
	"errors"
	"net/http"
	"strconv"

	"studiobook/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateStudio godoc
// @Summary      Create studio
// @Description  Registers a new studio. Admin only.
// @Tags         studios
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        studio  body      CreateStudioRequest  true  "Studio"
// @Success      201     {object}  Studio
// @Failure      400     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /admin/studios [post]
func (h *Handler) CreateStudio(c *gin.Context) {
	var req CreateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.service.CreateStudio(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create studio"})
		return
	}

	c.JSON(http.StatusCreated, st)
}

// ListStudios godoc
// @Summary      List studios
// @Tags         studios
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Studio
// @Failure      500  {object}  gin.H
// @Router       /studios [get]
func (h *Handler) ListStudios(c *gin.Context) {
	studios, err := h.service.GetAllStudios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch studios"})
		return
	}

	c.JSON(http.StatusOK, studios)
}

// GetDaySchedule godoc
// @Summary      Day schedule
// @Description  Returns the six-slot grid for a studio day, marking taken slots and the caller's own bookings.
// @Tags         studios
// @Security     BearerAuth
// @Produce      json
// @Param        studioID  path      int     true  "Studio ID"
// @Param        date      query     string  true  "Date (YYYY-MM-DD)"
// @Success      200       {object}  DaySchedule
// @Failure      400       {object}  gin.H
// @Failure      404       {object}  gin.H
// @Failure      500       {object}  gin.H
// @Router       /studios/{studioID}/schedule [get]
func (h *Handler) GetDaySchedule(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	studioID, err := strconv.Atoi(c.Param("studioID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid studio ID"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query param is required"})
		return
	}

	sched, err := h.service.GetDaySchedule(c.Request.Context(), studioID, userID, date)
	if err != nil {
		switch {
		case errors.Is(err, ErrStudioNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Studio not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, use YYYY-MM-DD"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, sched)
}
