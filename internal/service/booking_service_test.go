package service

import (
	"context"
	"testing"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func customerSession() *domain.Session {
	return &domain.Session{
		Token:   "tok-customer",
		Profile: domain.Profile{Name: "ola", VenueManager: false},
	}
}

type sentBooking struct {
	token string
	req   *holidaze.BookingRequest
}

// bookingFixture returns a service whose venue has one existing booking over
// May 20-22 and a mock that records the outgoing booking request.
func bookingFixture(t *testing.T) (*BookingService, *sentBooking) {
	t.Helper()

	sent := &sentBooking{}
	api := &mockAPI{
		getVenueFn: func(ctx context.Context, id string, vq holidaze.VenueQuery) (*domain.Venue, error) {
			require.True(t, vq.Bookings, "submit-time recheck must fetch fresh bookings")
			return &domain.Venue{
				ID:        id,
				Name:      "Fjord Cabin",
				Price:     100,
				MaxGuests: 4,
				Owner:     &domain.Profile{Name: "maren"},
				Bookings: []domain.Booking{
					{DateFrom: date(2024, 5, 20), DateTo: date(2024, 5, 22), Guests: 2},
				},
			}, nil
		},
		createBookingFn: func(ctx context.Context, token string, req *holidaze.BookingRequest) (*domain.Booking, error) {
			sent.token = token
			sent.req = req
			return &domain.Booking{
				ID:       "b-new",
				DateFrom: req.DateFrom,
				DateTo:   req.DateTo,
				Guests:   req.Guests,
			}, nil
		},
	}

	svc := NewBookingService(api, nil)
	svc.now = func() time.Time { return date(2024, 5, 15) }
	return svc, sent
}

func TestCreateBooking(t *testing.T) {
	svc, sent := bookingFixture(t)

	result, err := svc.Create(context.Background(), customerSession(), CreateParams{
		VenueID:  "v1",
		DateFrom: date(2024, 5, 16),
		DateTo:   date(2024, 5, 19),
		Guests:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, "b-new", result.Booking.ID)
	assert.Equal(t, 3, result.Quote.Nights)
	assert.Equal(t, 300.0, result.Quote.TotalPrice)

	require.NotNil(t, sent.req)
	assert.Equal(t, "v1", sent.req.VenueID)
	assert.Equal(t, "tok-customer", sent.token)
}

func TestCreateBookingConflictDetectedAtSubmit(t *testing.T) {
	svc, sent := bookingFixture(t)

	// Overlaps the existing May 20-22 booking.
	_, err := svc.Create(context.Background(), customerSession(), CreateParams{
		VenueID:  "v1",
		DateFrom: date(2024, 5, 19),
		DateTo:   date(2024, 5, 21),
		Guests:   2,
	})

	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
	assert.Nil(t, sent.req, "conflicting booking must never reach the remote API")
}

func TestCreateBookingPastDatesRejected(t *testing.T) {
	svc, sent := bookingFixture(t)

	_, err := svc.Create(context.Background(), customerSession(), CreateParams{
		VenueID:  "v1",
		DateFrom: date(2024, 5, 10),
		DateTo:   date(2024, 5, 12),
		Guests:   2,
	})

	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
	assert.Nil(t, sent.req)
}

func TestCreateBookingOwnVenue(t *testing.T) {
	svc, _ := bookingFixture(t)

	owner := &domain.Session{
		Token:   "tok-owner",
		Profile: domain.Profile{Name: "maren", VenueManager: true},
	}
	_, err := svc.Create(context.Background(), owner, CreateParams{
		VenueID:  "v1",
		DateFrom: date(2024, 5, 16),
		DateTo:   date(2024, 5, 17),
		Guests:   1,
	})

	assert.ErrorIs(t, err, domain.ErrOwnVenueBooking)
}

func TestCreateBookingGuestsExceedCapacity(t *testing.T) {
	svc, _ := bookingFixture(t)

	_, err := svc.Create(context.Background(), customerSession(), CreateParams{
		VenueID:  "v1",
		DateFrom: date(2024, 5, 16),
		DateTo:   date(2024, 5, 17),
		Guests:   9,
	})

	assert.ErrorIs(t, err, domain.ErrGuestsExceedCapacity)
}

func TestCreateBookingInvalidInput(t *testing.T) {
	svc, _ := bookingFixture(t)

	tests := []struct {
		name    string
		params  CreateParams
		wantErr error
	}{
		{
			name:    "inverted dates",
			params:  CreateParams{VenueID: "v1", DateFrom: date(2024, 5, 19), DateTo: date(2024, 5, 16), Guests: 2},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "missing dates",
			params:  CreateParams{VenueID: "v1", Guests: 2},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "zero guests",
			params:  CreateParams{VenueID: "v1", DateFrom: date(2024, 5, 16), DateTo: date(2024, 5, 17)},
			wantErr: domain.ErrInvalidGuestCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), customerSession(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserBookings(t *testing.T) {
	api := &mockAPI{
		profileBookingsFn: func(ctx context.Context, token, name string) ([]domain.Booking, error) {
			assert.Equal(t, "tok-customer", token)
			assert.Equal(t, "ola", name)
			return []domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil
		},
	}

	svc := NewBookingService(api, nil)
	bookings, err := svc.UserBookings(context.Background(), customerSession())
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestQuote(t *testing.T) {
	api := &mockAPI{
		getVenueFn: func(ctx context.Context, id string, vq holidaze.VenueQuery) (*domain.Venue, error) {
			return &domain.Venue{ID: id, Price: 100}, nil
		},
	}
	svc := NewBookingService(api, nil)

	q, err := svc.Quote(context.Background(), "v1", date(2024, 5, 1), date(2024, 5, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 300.0, q.TotalPrice)

	// Unset dates are a valid zero quote, not an error.
	q, err = svc.Quote(context.Background(), "v1", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, q.Nights)
	assert.Equal(t, 0.0, q.TotalPrice)
}
