package holidaze

import (
	"context"
	"net/http"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
)

// Register creates a new user on the remote API. Auth endpoints live under the
// auth base URL rather than the Holidaze resource root.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*domain.Profile, error) {
	raw, err := c.do(ctx, "/auth/register", requestOptions{
		method:  http.MethodPost,
		body:    req,
		baseURL: c.cfg.AuthBaseURL,
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

// Login authenticates and returns the profile snapshot with its access token.
// The _holidaze flag asks the API to include the venueManager role.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	raw, err := c.do(ctx, "/auth/login?_holidaze=true", requestOptions{
		method: http.MethodPost,
		body: map[string]string{
			"email":    email,
			"password": password,
		},
		baseURL: c.cfg.AuthBaseURL,
	})
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := decodeData(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
