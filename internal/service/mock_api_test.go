package service

import (
	"context"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
)

// mockAPI is a hand-written HolidazeAPI for tests. Each field overrides one
// call; unset calls fail loudly via the zero-value returns.
type mockAPI struct {
	registerFn        func(ctx context.Context, req *holidaze.RegisterRequest) (*domain.Profile, error)
	loginFn           func(ctx context.Context, email, password string) (*holidaze.LoginResult, error)
	listVenuesFn      func(ctx context.Context, p holidaze.ListParams) ([]domain.Venue, error)
	getVenueFn        func(ctx context.Context, id string, vq holidaze.VenueQuery) (*domain.Venue, error)
	createVenueFn     func(ctx context.Context, token string, req *holidaze.VenueRequest) (*domain.Venue, error)
	updateVenueFn     func(ctx context.Context, token, id string, req *holidaze.VenueRequest) (*domain.Venue, error)
	deleteVenueFn     func(ctx context.Context, token, id string) error
	createBookingFn   func(ctx context.Context, token string, req *holidaze.BookingRequest) (*domain.Booking, error)
	profileBookingsFn func(ctx context.Context, token, name string) ([]domain.Booking, error)
	managerVenuesFn   func(ctx context.Context, token, name string) ([]domain.Venue, error)
	updateProfileFn   func(ctx context.Context, token, name string, req *holidaze.ProfileUpdateRequest) (*domain.Profile, error)
}

func (m *mockAPI) Register(ctx context.Context, req *holidaze.RegisterRequest) (*domain.Profile, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAPI) Login(ctx context.Context, email, password string) (*holidaze.LoginResult, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAPI) ListVenues(ctx context.Context, p holidaze.ListParams) ([]domain.Venue, error) {
	return m.listVenuesFn(ctx, p)
}

func (m *mockAPI) GetVenue(ctx context.Context, id string, vq holidaze.VenueQuery) (*domain.Venue, error) {
	return m.getVenueFn(ctx, id, vq)
}

func (m *mockAPI) CreateVenue(ctx context.Context, token string, req *holidaze.VenueRequest) (*domain.Venue, error) {
	return m.createVenueFn(ctx, token, req)
}

func (m *mockAPI) UpdateVenue(ctx context.Context, token, id string, req *holidaze.VenueRequest) (*domain.Venue, error) {
	return m.updateVenueFn(ctx, token, id, req)
}

func (m *mockAPI) DeleteVenue(ctx context.Context, token, id string) error {
	return m.deleteVenueFn(ctx, token, id)
}

func (m *mockAPI) CreateBooking(ctx context.Context, token string, req *holidaze.BookingRequest) (*domain.Booking, error) {
	return m.createBookingFn(ctx, token, req)
}

func (m *mockAPI) ProfileBookings(ctx context.Context, token, name string) ([]domain.Booking, error) {
	return m.profileBookingsFn(ctx, token, name)
}

func (m *mockAPI) ManagerVenues(ctx context.Context, token, name string) ([]domain.Venue, error) {
	return m.managerVenuesFn(ctx, token, name)
}

func (m *mockAPI) UpdateProfile(ctx context.Context, token, name string, req *holidaze.ProfileUpdateRequest) (*domain.Profile, error) {
	return m.updateProfileFn(ctx, token, name, req)
}
