package service

import (
	"context"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/availability"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/query"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/stats"
	"go.uber.org/zap"
)

// browseFetchLimit bounds the remote fetch backing the browse view. Filtering
// happens in memory over this window, newest listings first. Acceptable at the
// catalog's current scale; large catalogs should push the filter server-side.
const browseFetchLimit = 100

// VenueService serves venue browsing, manager CRUD and dashboard statistics.
type VenueService struct {
	api HolidazeAPI
	log *zap.Logger
}

// NewVenueService creates a venue service.
func NewVenueService(api HolidazeAPI, log *zap.Logger) *VenueService {
	if log == nil {
		log = zap.NewNop()
	}
	return &VenueService{api: api, log: log}
}

// Browse fetches the venue collection and applies the text/country filter and
// pagination locally.
func (s *VenueService) Browse(ctx context.Context, p query.Params) (*query.Result, error) {
	venues, err := s.api.ListVenues(ctx, holidaze.ListParams{
		Limit:     browseFetchLimit,
		Sort:      "created",
		SortOrder: "desc",
	})
	if err != nil {
		return nil, err
	}

	result := query.Apply(venues, p)
	return &result, nil
}

// VenueDetail is a venue with its calendar-blocking data precomputed.
type VenueDetail struct {
	Venue      domain.Venue `json:"venue"`
	BookedDays []string     `json:"booked_days"`
}

// Detail fetches a single venue with owner and bookings and expands the booked
// date ranges into the day set the calendar disables.
func (s *VenueService) Detail(ctx context.Context, id string) (*VenueDetail, error) {
	venue, err := s.api.GetVenue(ctx, id, holidaze.VenueQuery{Owner: true, Bookings: true})
	if err != nil {
		return nil, err
	}

	return &VenueDetail{
		Venue:      *venue,
		BookedDays: availability.BookedDays(venue.Bookings).Keys(),
	}, nil
}

// Create creates a venue for the session's manager.
func (s *VenueService) Create(ctx context.Context, sess *domain.Session, req *holidaze.VenueRequest) (*domain.Venue, error) {
	if !sess.Profile.IsManager() {
		return nil, domain.ErrManagerOnly
	}

	venue, err := s.api.CreateVenue(ctx, sess.Token, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("venue created",
		zap.String("venue_id", venue.ID),
		zap.String("manager", sess.Profile.Name))
	return venue, nil
}

// Update replaces a venue's listing data after confirming ownership.
func (s *VenueService) Update(ctx context.Context, sess *domain.Session, id string, req *holidaze.VenueRequest) (*domain.Venue, error) {
	if err := s.requireOwnership(ctx, sess, id); err != nil {
		return nil, err
	}

	venue, err := s.api.UpdateVenue(ctx, sess.Token, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("venue updated",
		zap.String("venue_id", id),
		zap.String("manager", sess.Profile.Name))
	return venue, nil
}

// Delete removes a venue after confirming ownership.
func (s *VenueService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if err := s.requireOwnership(ctx, sess, id); err != nil {
		return err
	}

	if err := s.api.DeleteVenue(ctx, sess.Token, id); err != nil {
		return err
	}
	s.log.Info("venue deleted",
		zap.String("venue_id", id),
		zap.String("manager", sess.Profile.Name))
	return nil
}

// ManagerVenues returns the session manager's venues with nested bookings.
func (s *VenueService) ManagerVenues(ctx context.Context, sess *domain.Session) ([]domain.Venue, error) {
	if !sess.Profile.IsManager() {
		return nil, domain.ErrManagerOnly
	}
	return s.api.ManagerVenues(ctx, sess.Token, sess.Profile.Name)
}

// Stats aggregates the manager dashboard totals.
func (s *VenueService) Stats(ctx context.Context, sess *domain.Session) (stats.Summary, error) {
	venues, err := s.ManagerVenues(ctx, sess)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Aggregate(venues), nil
}

// requireOwnership verifies the session's manager owns the venue. The owner
// relation is fetched fresh so a stale snapshot cannot authorize a mutation.
func (s *VenueService) requireOwnership(ctx context.Context, sess *domain.Session, id string) error {
	if !sess.Profile.IsManager() {
		return domain.ErrManagerOnly
	}

	venue, err := s.api.GetVenue(ctx, id, holidaze.VenueQuery{Owner: true})
	if err != nil {
		return err
	}
	if !venue.IsOwnedBy(sess.Profile.Name) {
		return domain.ErrNotVenueOwner
	}
	return nil
}
