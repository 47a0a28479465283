package domain

import "time"

// Booking represents a reserved date range on a venue. Bookings are created by
// customers and are immutable afterwards; there is no edit or cancel flow.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Venue    *Venue    `json:"venue,omitempty"`
	Customer *Profile  `json:"customer,omitempty"`
}

// Validate validates all booking fields.
func (b *Booking) Validate() error {
	if err := b.ValidateDates(); err != nil {
		return err
	}
	if err := b.ValidateGuests(); err != nil {
		return err
	}
	return nil
}

// ValidateDates validates that both dates are set and dateTo does not precede dateFrom.
func (b *Booking) ValidateDates() error {
	if b.DateFrom.IsZero() || b.DateTo.IsZero() {
		return ErrInvalidDateRange
	}
	if b.DateTo.Before(b.DateFrom) {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidateGuests validates the guest count.
func (b *Booking) ValidateGuests() error {
	if b.Guests <= 0 {
		return ErrInvalidGuestCount
	}
	return nil
}
