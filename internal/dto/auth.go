package dto

import "github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"

// RegisterRequest is the gateway-side registration payload. The handle and
// email rules mirror what the remote API enforces so bad input fails here
// with a field-level message instead of a remote round trip.
type RegisterRequest struct {
	Name            string  `json:"name" binding:"required,min=3,handle"`
	Email           string  `json:"email" binding:"required,email,noroffemail"`
	Password        string  `json:"password" binding:"required,min=8"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required,eqfield=Password"`
	VenueManager    bool    `json:"venueManager"`
	Bio             string  `json:"bio,omitempty" binding:"omitempty,max=160"`
	AvatarURL       string  `json:"avatarUrl,omitempty" binding:"omitempty,url"`
	AvatarAlt       string  `json:"avatarAlt,omitempty" binding:"omitempty,max=120"`
}

// ToUpstream converts the request into the remote API's register payload.
func (r *RegisterRequest) ToUpstream() *holidaze.RegisterRequest {
	req := &holidaze.RegisterRequest{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		VenueManager: r.VenueManager,
		Bio:          r.Bio,
	}
	if r.AvatarURL != "" {
		req.Avatar = mediaFrom(r.AvatarURL, r.AvatarAlt)
	}
	return req
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Bio       string `json:"bio,omitempty" binding:"omitempty,max=160"`
	AvatarURL string `json:"avatarUrl,omitempty" binding:"omitempty,url"`
	AvatarAlt string `json:"avatarAlt,omitempty" binding:"omitempty,max=120"`
}

func (r *UpdateProfileRequest) ToUpstream() *holidaze.ProfileUpdateRequest {
	req := &holidaze.ProfileUpdateRequest{Bio: r.Bio}
	if r.AvatarURL != "" {
		req.Avatar = mediaFrom(r.AvatarURL, r.AvatarAlt)
	}
	return req
}
