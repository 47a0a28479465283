// Package availability expands booking intervals into calendar days and
// classifies days as selectable for new bookings.
package availability

import (
	"sort"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
)

// DayKeyLayout is the string key format for a single calendar day.
const DayKeyLayout = "2006-01-02"

// DaySet is a set of calendar-day keys.
type DaySet map[string]struct{}

// DayKey returns the day key for t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// truncateDay drops the time-of-day component.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BookedDays expands each booking's date range into the set of individual
// calendar days covered, inclusive of both endpoints. Bookings with an unset
// endpoint contribute no days; malformed date strings never reach this point
// because dates are decoded into time.Time at the API boundary.
func BookedDays(bookings []domain.Booking) DaySet {
	days := make(DaySet)
	for _, b := range bookings {
		if b.DateFrom.IsZero() || b.DateTo.IsZero() {
			continue
		}
		from := truncateDay(b.DateFrom)
		to := truncateDay(b.DateTo)
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			days[DayKey(d)] = struct{}{}
		}
	}
	return days
}

// Contains reports whether the day of t is in the set.
func (s DaySet) Contains(t time.Time) bool {
	_, ok := s[DayKey(t)]
	return ok
}

// Keys returns the day keys in ascending order.
func (s DaySet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Calendar classifies calendar days against a booked-day set and a fixed
// "today". A day is wholly available or wholly blocked; there are no
// partial-day semantics.
type Calendar struct {
	booked DaySet
	today  time.Time
}

// NewCalendar creates a calendar for the given booked days and current date.
func NewCalendar(booked DaySet, today time.Time) *Calendar {
	return &Calendar{booked: booked, today: truncateDay(today)}
}

// Selectable reports whether a single day can be selected: it must not be
// strictly before today and must not be booked.
func (c *Calendar) Selectable(day time.Time) bool {
	d := truncateDay(day)
	if d.Before(c.today) {
		return false
	}
	return !c.booked.Contains(d)
}

// RangeSelectable reports whether every day in [from, to] can be selected.
// An inverted or unset range is never selectable.
func (c *Calendar) RangeSelectable(from, to time.Time) bool {
	if from.IsZero() || to.IsZero() {
		return false
	}
	start := truncateDay(from)
	end := truncateDay(to)
	if end.Before(start) {
		return false
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !c.Selectable(d) {
			return false
		}
	}
	return true
}
