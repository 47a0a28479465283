package holidaze

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
)

// envelope is the wire shape of every successful Holidaze response.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// errorBody covers the two error shapes the remote API produces: a top-level
// message, or an errors array of messages.
type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Status  int
	Message string
}

// Error returns the server-provided message, or a generic fallback when the
// body carried none.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}

func parseAPIError(status int, raw []byte) *APIError {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return &APIError{Status: status, Message: body.Message}
		}
		if len(body.Errors) > 0 && body.Errors[0].Message != "" {
			return &APIError{Status: status, Message: body.Errors[0].Message}
		}
	}
	return &APIError{Status: status}
}

// RegisterRequest is the payload for /auth/register.
type RegisterRequest struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Password     string        `json:"password"`
	VenueManager bool          `json:"venueManager"`
	Bio          string        `json:"bio,omitempty"`
	Avatar       *domain.Media `json:"avatar,omitempty"`
}

// LoginResult is the profile snapshot plus access token returned by login.
type LoginResult struct {
	domain.Profile
	AccessToken string `json:"accessToken"`
}

// VenueRequest is the payload for creating or updating a venue.
type VenueRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	MaxGuests   int              `json:"maxGuests"`
	Rating      float64          `json:"rating,omitempty"`
	Location    domain.Location  `json:"location"`
	Meta        domain.Amenities `json:"meta"`
	Media       []domain.Media   `json:"media,omitempty"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId"`
}

// ProfileUpdateRequest is the payload for updating a profile.
type ProfileUpdateRequest struct {
	Avatar *domain.Media `json:"avatar,omitempty"`
	Bio    string        `json:"bio,omitempty"`
}

// ListParams control server-side paging and sorting of the venue list.
type ListParams struct {
	Limit     int
	Page      int
	Sort      string
	SortOrder string
}

// VenueQuery toggles the optional relations on a single-venue fetch.
type VenueQuery struct {
	Owner    bool
	Bookings bool
}
