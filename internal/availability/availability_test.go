package availability

import (
	"testing"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookedDays(t *testing.T) {
	bookings := []domain.Booking{
		{DateFrom: date(2024, 5, 1), DateTo: date(2024, 5, 3)},
		{DateFrom: date(2024, 5, 10), DateTo: date(2024, 5, 10)},
	}

	days := BookedDays(bookings)

	// Every day from dateFrom to dateTo inclusive is present.
	assert.Equal(t, []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-10"}, days.Keys())

	// No day outside any interval is present.
	assert.False(t, days.Contains(date(2024, 4, 30)))
	assert.False(t, days.Contains(date(2024, 5, 4)))
	assert.False(t, days.Contains(date(2024, 5, 9)))
	assert.False(t, days.Contains(date(2024, 5, 11)))
}

func TestBookedDaysIgnoresTimeOfDay(t *testing.T) {
	bookings := []domain.Booking{
		{
			DateFrom: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
			DateTo:   time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	days := BookedDays(bookings)
	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, days.Keys())
}

func TestBookedDaysSkipsUnsetEndpoints(t *testing.T) {
	bookings := []domain.Booking{
		{DateFrom: date(2024, 5, 1)},
		{DateTo: date(2024, 5, 3)},
		{},
	}

	assert.Empty(t, BookedDays(bookings))
}

func TestBookedDaysEmptyInput(t *testing.T) {
	assert.Empty(t, BookedDays(nil))
	assert.Empty(t, BookedDays([]domain.Booking{}))
}

func TestCalendarSelectable(t *testing.T) {
	today := date(2024, 5, 15)
	booked := BookedDays([]domain.Booking{
		{DateFrom: date(2024, 5, 20), DateTo: date(2024, 5, 22)},
	})
	cal := NewCalendar(booked, today)

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"past day is never selectable", date(2024, 5, 14), false},
		{"distant past day", date(2020, 1, 1), false},
		{"today is selectable", date(2024, 5, 15), true},
		{"free future day", date(2024, 5, 19), true},
		{"booked day", date(2024, 5, 20), false},
		{"middle of booked range", date(2024, 5, 21), false},
		{"day after booked range", date(2024, 5, 23), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Selectable(tt.day))
		})
	}
}

func TestCalendarSelectablePastDayIgnoresBookings(t *testing.T) {
	// A past day is unselectable regardless of booking data.
	cal := NewCalendar(DaySet{}, date(2024, 5, 15))
	assert.False(t, cal.Selectable(date(2024, 5, 1)))
}

func TestCalendarRangeSelectable(t *testing.T) {
	today := date(2024, 5, 15)
	booked := BookedDays([]domain.Booking{
		{DateFrom: date(2024, 5, 20), DateTo: date(2024, 5, 22)},
	})
	cal := NewCalendar(booked, today)

	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"free range", date(2024, 5, 16), date(2024, 5, 19), true},
		{"single free day", date(2024, 5, 16), date(2024, 5, 16), true},
		{"range overlapping booked days", date(2024, 5, 18), date(2024, 5, 21), false},
		{"range entirely booked", date(2024, 5, 20), date(2024, 5, 22), false},
		{"range starting in the past", date(2024, 5, 14), date(2024, 5, 16), false},
		{"inverted range", date(2024, 5, 19), date(2024, 5, 16), false},
		{"unset start", time.Time{}, date(2024, 5, 16), false},
		{"unset end", date(2024, 5, 16), time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.RangeSelectable(tt.from, tt.to))
		})
	}
}
