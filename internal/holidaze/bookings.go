package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
)

// CreateBooking creates a booking for the authenticated customer.
func (c *Client) CreateBooking(ctx context.Context, token string, req *BookingRequest) (*domain.Booking, error) {
	raw, err := c.do(ctx, "/bookings", requestOptions{
		method: http.MethodPost,
		body:   req,
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	var booking domain.Booking
	if err := decodeData(raw, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ProfileBookings fetches a profile's bookings with venue details included.
func (c *Client) ProfileBookings(ctx context.Context, token, name string) ([]domain.Booking, error) {
	endpoint := "/profiles/" + url.PathEscape(name) + "/bookings?_venue=true"

	raw, err := c.do(ctx, endpoint, requestOptions{token: token})
	if err != nil {
		return nil, err
	}

	var bookings []domain.Booking
	if err := decodeData(raw, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
