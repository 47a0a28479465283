package service

import (
	"context"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/availability"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/pricing"
	"go.uber.org/zap"
)

// BookingService creates bookings and lists a customer's bookings.
type BookingService struct {
	api HolidazeAPI
	now func() time.Time
	log *zap.Logger
}

// NewBookingService creates a booking service.
func NewBookingService(api HolidazeAPI, log *zap.Logger) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{api: api, now: time.Now, log: log}
}

// CreateParams describe a requested booking.
type CreateParams struct {
	VenueID  string
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
}

// CreateResult is a created booking together with its price quote.
type CreateResult struct {
	Booking domain.Booking `json:"booking"`
	Quote   pricing.Quote  `json:"quote"`
}

// Create books a venue for the session's user. The venue's bookings are
// re-fetched and the selected range re-checked immediately before creation, so
// a range another customer booked since the calendar loaded is rejected with
// domain.ErrDatesUnavailable instead of reaching the remote API.
func (s *BookingService) Create(ctx context.Context, sess *domain.Session, p CreateParams) (*CreateResult, error) {
	candidate := domain.Booking{DateFrom: p.DateFrom, DateTo: p.DateTo, Guests: p.Guests}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	venue, err := s.api.GetVenue(ctx, p.VenueID, holidaze.VenueQuery{Owner: true, Bookings: true})
	if err != nil {
		return nil, err
	}

	if venue.IsOwnedBy(sess.Profile.Name) {
		return nil, domain.ErrOwnVenueBooking
	}
	if p.Guests > venue.MaxGuests {
		return nil, domain.ErrGuestsExceedCapacity
	}

	cal := availability.NewCalendar(availability.BookedDays(venue.Bookings), s.now())
	if !cal.RangeSelectable(p.DateFrom, p.DateTo) {
		return nil, domain.ErrDatesUnavailable
	}

	booking, err := s.api.CreateBooking(ctx, sess.Token, &holidaze.BookingRequest{
		DateFrom: p.DateFrom,
		DateTo:   p.DateTo,
		Guests:   p.Guests,
		VenueID:  p.VenueID,
	})
	if err != nil {
		return nil, err
	}

	quote := pricing.QuoteStay(p.DateFrom, p.DateTo, venue.Price)
	s.log.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("venue_id", p.VenueID),
		zap.String("customer", sess.Profile.Name),
		zap.Int("nights", quote.Nights))

	return &CreateResult{Booking: *booking, Quote: quote}, nil
}

// UserBookings returns the session user's bookings with venue details.
func (s *BookingService) UserBookings(ctx context.Context, sess *domain.Session) ([]domain.Booking, error) {
	return s.api.ProfileBookings(ctx, sess.Token, sess.Profile.Name)
}

// Quote prices a candidate stay at a venue without creating anything. Unset
// dates quote zero nights and a zero total.
func (s *BookingService) Quote(ctx context.Context, venueID string, from, to time.Time) (pricing.Quote, error) {
	venue, err := s.api.GetVenue(ctx, venueID, holidaze.VenueQuery{})
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.QuoteStay(from, to, venue.Price), nil
}
