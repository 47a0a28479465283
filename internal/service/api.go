package service

import (
	"context"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
)

// HolidazeAPI is the remote API surface the services depend on. Satisfied by
// *holidaze.Client; tests substitute mocks.
type HolidazeAPI interface {
	Register(ctx context.Context, req *holidaze.RegisterRequest) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (*holidaze.LoginResult, error)

	ListVenues(ctx context.Context, p holidaze.ListParams) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id string, vq holidaze.VenueQuery) (*domain.Venue, error)
	CreateVenue(ctx context.Context, token string, req *holidaze.VenueRequest) (*domain.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, req *holidaze.VenueRequest) (*domain.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error

	CreateBooking(ctx context.Context, token string, req *holidaze.BookingRequest) (*domain.Booking, error)
	ProfileBookings(ctx context.Context, token, name string) ([]domain.Booking, error)

	ManagerVenues(ctx context.Context, token, name string) ([]domain.Venue, error)
	UpdateProfile(ctx context.Context, token, name string, req *holidaze.ProfileUpdateRequest) (*domain.Profile, error)
}
