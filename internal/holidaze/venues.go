package holidaze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
)

// ListVenues fetches the venue collection.
func (c *Client) ListVenues(ctx context.Context, p ListParams) ([]domain.Venue, error) {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}

	endpoint := "/venues"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	raw, err := c.do(ctx, endpoint, requestOptions{})
	if err != nil {
		return nil, err
	}

	var venues []domain.Venue
	if err := decodeData(raw, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// GetVenue fetches a single venue, optionally with its owner and bookings.
func (c *Client) GetVenue(ctx context.Context, id string, vq VenueQuery) (*domain.Venue, error) {
	q := url.Values{}
	if vq.Owner {
		q.Set("_owner", "true")
	}
	if vq.Bookings {
		q.Set("_bookings", "true")
	}

	endpoint := "/venues/" + url.PathEscape(id)
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	raw, err := c.do(ctx, endpoint, requestOptions{})
	if err != nil {
		return nil, err
	}

	var venue domain.Venue
	if err := decodeData(raw, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// CreateVenue creates a venue on behalf of the authenticated manager.
func (c *Client) CreateVenue(ctx context.Context, token string, req *VenueRequest) (*domain.Venue, error) {
	raw, err := c.do(ctx, "/venues", requestOptions{
		method: http.MethodPost,
		body:   req,
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	var venue domain.Venue
	if err := decodeData(raw, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// UpdateVenue replaces a venue's listing data.
func (c *Client) UpdateVenue(ctx context.Context, token, id string, req *VenueRequest) (*domain.Venue, error) {
	raw, err := c.do(ctx, "/venues/"+url.PathEscape(id), requestOptions{
		method: http.MethodPut,
		body:   req,
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	var venue domain.Venue
	if err := decodeData(raw, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// DeleteVenue removes a venue. The remote API answers 204 on success, which
// the transport treats as a bodyless success.
func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	raw, err := c.do(ctx, "/venues/"+url.PathEscape(id), requestOptions{
		method: http.MethodDelete,
		token:  token,
	})
	if err != nil {
		return err
	}
	if raw != nil {
		return fmt.Errorf("unexpected response body on venue delete")
	}
	return nil
}
