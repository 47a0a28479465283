package domain

import "time"

// Profile represents a registered user. The venueManager flag is fixed at
// registration and gates the manager dashboard and venue mutations.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       Media  `json:"avatar"`
	Bio          string `json:"bio"`
	VenueManager bool   `json:"venueManager"`
}

// IsManager reports whether the profile has the venue manager role.
func (p *Profile) IsManager() bool {
	return p.VenueManager
}

// Session is a bearer token paired with the profile snapshot taken at login.
// The two are always written together and destroyed together.
type Session struct {
	Token     string    `json:"token"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
}
