package handler

import (
	"errors"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/response"
	"github.com/gin-gonic/gin"
)

// writeError maps service and remote errors onto the response envelope.
// Remote API errors pass through with their original status and message so
// the client sees what the upstream actually said.
func writeError(c *gin.Context, err error) {
	var apiErr *holidaze.APIError
	if errors.As(err, &apiErr) {
		code := "UPSTREAM_ERROR"
		switch {
		case apiErr.Status == 401:
			code = "UNAUTHORIZED"
		case apiErr.Status == 404:
			code = "NOT_FOUND"
		case apiErr.Status >= 400 && apiErr.Status < 500:
			code = "BAD_REQUEST"
		}
		response.Error(c, apiErr.Status, code, apiErr.Error(), "")
		return
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		response.Unauthorized(c, "You are not logged in")
	case errors.Is(err, domain.ErrManagerOnly):
		response.Forbidden(c, "This action requires a venue manager account")
	case errors.Is(err, domain.ErrNotVenueOwner):
		response.Forbidden(c, "You do not own this venue")
	case errors.Is(err, domain.ErrOwnVenueBooking):
		response.Forbidden(c, "You cannot book your own venue")
	case errors.Is(err, domain.ErrDatesUnavailable):
		response.Conflict(c, "The selected dates are no longer available")
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidGuestCount),
		errors.Is(err, domain.ErrGuestsExceedCapacity),
		errors.Is(err, domain.ErrInvalidVenueName),
		errors.Is(err, domain.ErrInvalidVenuePrice),
		errors.Is(err, domain.ErrInvalidMaxGuests),
		errors.Is(err, domain.ErrInvalidRating):
		response.BadRequest(c, err.Error())
	default:
		response.BadGateway(c, "The booking service is unavailable right now")
	}
}
