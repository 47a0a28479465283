package handler

import (
	"strconv"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/dto"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/query"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/service"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/response"
	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venues   *service.VenueService
	bookings *service.BookingService
}

func NewVenueHandler(venues *service.VenueService, bookings *service.BookingService) *VenueHandler {
	return &VenueHandler{venues: venues, bookings: bookings}
}

// List handles GET /api/v1/venues?q=&country=&page=&page_size=&sort=rating
func (h *VenueHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	params := query.Params{
		Search:       c.Query("q"),
		Country:      c.Query("country"),
		Page:         page,
		PageSize:     pageSize,
		SortByRating: c.Query("sort") == "rating",
	}

	result, err := h.venues.Browse(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessWithMeta(c, result.Venues, gin.H{
		"page":       result.Page,
		"pageSize":   result.PageSize,
		"totalItems": result.TotalItems,
		"totalPages": result.TotalPages,
	})
}

// Get handles GET /api/v1/venues/:id
func (h *VenueHandler) Get(c *gin.Context) {
	detail, err := h.venues.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, detail)
}

// Quote handles POST /api/v1/venues/:id/quote
func (h *VenueHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	quote, err := h.bookings.Quote(c.Request.Context(), c.Param("id"), req.DateFrom, req.DateTo)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, quote)
}

// Create handles POST /api/v1/manager/venues
func (h *VenueHandler) Create(c *gin.Context) {
	var req dto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	venue, err := h.venues.Create(c.Request.Context(), sessionFrom(c), req.ToUpstream())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, venue)
}

// Update handles PUT /api/v1/manager/venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	var req dto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	venue, err := h.venues.Update(c.Request.Context(), sessionFrom(c), c.Param("id"), req.ToUpstream())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, venue)
}

// Delete handles DELETE /api/v1/manager/venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	if err := h.venues.Delete(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.NoContent(c)
}

// ManagerVenues handles GET /api/v1/manager/venues
func (h *VenueHandler) ManagerVenues(c *gin.Context) {
	venues, err := h.venues.ManagerVenues(c.Request.Context(), sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, venues)
}

// Stats handles GET /api/v1/manager/stats
func (h *VenueHandler) Stats(c *gin.Context) {
	summary, err := h.venues.Stats(c.Request.Context(), sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, summary)
}
