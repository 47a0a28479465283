package dto

import "time"

// CreateBookingRequest is the booking payload. Dates arrive as RFC 3339
// timestamps; the date-range and guest-count rules live on the domain type
// and are enforced by the booking service.
type CreateBookingRequest struct {
	VenueID  string    `json:"venueId" binding:"required"`
	DateFrom time.Time `json:"dateFrom" binding:"required"`
	DateTo   time.Time `json:"dateTo" binding:"required"`
	Guests   int       `json:"guests" binding:"required,gte=1"`
}

// QuoteRequest prices a candidate stay without creating a booking.
type QuoteRequest struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
}
