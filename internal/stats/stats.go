// Package stats aggregates derived statistics over a manager's venues.
package stats

import (
	"math"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/pricing"
)

// Summary holds the manager dashboard totals.
type Summary struct {
	VenueCount        int     `json:"venue_count"`
	BookingCount      int     `json:"booking_count"`
	EstimatedEarnings float64 `json:"estimated_earnings"`
}

// Aggregate computes totals over the given venues. Venues without a booking
// collection contribute zero bookings. Earnings are estimated per booking as
// billed nights times the venue's nightly price; a same-day range still bills
// one night.
func Aggregate(venues []domain.Venue) Summary {
	var s Summary
	s.VenueCount = len(venues)
	for _, v := range venues {
		s.BookingCount += len(v.Bookings)
		for _, b := range v.Bookings {
			s.EstimatedEarnings += float64(pricing.BilledNights(b.DateFrom, b.DateTo)) * v.Price
		}
	}
	return s
}

// RoundedEarnings returns the earnings estimate rounded for display.
func (s Summary) RoundedEarnings() int {
	return int(math.Round(s.EstimatedEarnings))
}
