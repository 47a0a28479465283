package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
)

// ManagerVenues fetches a manager's venues with owner and booking relations.
func (c *Client) ManagerVenues(ctx context.Context, token, name string) ([]domain.Venue, error) {
	endpoint := "/profiles/" + url.PathEscape(name) + "/venues?_bookings=true&_owner=true"

	raw, err := c.do(ctx, endpoint, requestOptions{token: token})
	if err != nil {
		return nil, err
	}

	var venues []domain.Venue
	if err := decodeData(raw, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// UpdateProfile updates a profile's avatar and bio.
func (c *Client) UpdateProfile(ctx context.Context, token, name string, req *ProfileUpdateRequest) (*domain.Profile, error) {
	raw, err := c.do(ctx, "/profiles/"+url.PathEscape(name), requestOptions{
		method: http.MethodPut,
		body:   req,
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	var profile domain.Profile
	if err := decodeData(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
