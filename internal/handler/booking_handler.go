package handler

import (
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/dto"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/service"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/response"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.bookings.Create(c.Request.Context(), sessionFrom(c), service.CreateParams{
		VenueID:  req.VenueID,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Guests:   req.Guests,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, result)
}

// List handles GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.UserBookings(c.Request.Context(), sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, bookings)
}
