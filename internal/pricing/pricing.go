// Package pricing computes stay lengths and prices.
//
// There is a single definition of a stay length: Nights, the ceiling of the
// whole-day difference between the two dates. Earnings estimates additionally
// floor the result at one night via BilledNights so a same-day stay still
// contributes one night of revenue.
package pricing

import "time"

const day = 24 * time.Hour

// Nights returns the number of nights between from and to: the ceiling of the
// whole-day difference, never negative. Returns 0 when either date is unset.
func Nights(from, to time.Time) int {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	diff := to.Sub(from)
	if diff <= 0 {
		return 0
	}
	nights := int(diff / day)
	if diff%day != 0 {
		nights++
	}
	return nights
}

// BilledNights returns Nights floored at one, the policy used for earnings
// estimates: a same-day or degenerate range still bills a single night.
func BilledNights(from, to time.Time) int {
	if n := Nights(from, to); n > 1 {
		return n
	}
	return 1
}

// Quote is the computed cost of a stay. Zero nights with a zero total is a
// valid, displayable state, not an error.
type Quote struct {
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

// QuoteStay prices a candidate stay. A negative nightly price is treated as 0.
func QuoteStay(from, to time.Time, nightlyPrice float64) Quote {
	if nightlyPrice < 0 {
		nightlyPrice = 0
	}
	nights := Nights(from, to)
	return Quote{
		Nights:     nights,
		TotalPrice: float64(nights) * nightlyPrice,
	}
}
