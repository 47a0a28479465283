package domain

import "errors"

// Domain errors
var (
	// Venue errors
	ErrInvalidVenueName  = errors.New("venue name is required")
	ErrInvalidVenuePrice = errors.New("venue price must not be negative")
	ErrInvalidMaxGuests  = errors.New("venue max guests must be positive")
	ErrInvalidRating     = errors.New("venue rating must be between 0 and 5")
	ErrNotVenueOwner     = errors.New("venue belongs to another manager")

	// Booking errors
	ErrInvalidDateRange     = errors.New("booking date range is invalid")
	ErrInvalidGuestCount    = errors.New("guest count must be positive")
	ErrGuestsExceedCapacity = errors.New("guest count exceeds venue capacity")
	ErrDatesUnavailable     = errors.New("selected dates are no longer available")
	ErrOwnVenueBooking      = errors.New("cannot book your own venue")

	// Role errors
	ErrManagerOnly = errors.New("venue manager role required")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
