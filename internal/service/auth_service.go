package service

import (
	"context"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/session"
	"go.uber.org/zap"
)

// AuthService handles registration, login and the session lifecycle.
// Authentication itself is delegated to the remote API; this service only
// forwards credentials and manages the local session snapshot.
type AuthService struct {
	api      HolidazeAPI
	sessions session.Store
	log      *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(api HolidazeAPI, sessions session.Store, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{api: api, sessions: sessions, log: log}
}

// Register forwards a registration to the remote API. Client-side validation
// has already happened at the request binding layer.
func (s *AuthService) Register(ctx context.Context, req *holidaze.RegisterRequest) (*domain.Profile, error) {
	profile, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered",
		zap.String("name", profile.Name),
		zap.Bool("venue_manager", profile.VenueManager))
	return profile, nil
}

// Login authenticates against the remote API and persists the session: the
// access token and profile snapshot are written together.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		Token:     result.AccessToken,
		Profile:   result.Profile,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	s.log.Info("user logged in", zap.String("name", sess.Profile.Name))
	return sess, nil
}

// Logout destroys the stored session, removing token and snapshot together.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to its stored session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessions.Get(ctx, token)
}

// UpdateProfile updates avatar and bio on the remote API and refreshes the
// stored session snapshot so later requests see the new profile.
func (s *AuthService) UpdateProfile(ctx context.Context, sess *domain.Session, req *holidaze.ProfileUpdateRequest) (*domain.Profile, error) {
	profile, err := s.api.UpdateProfile(ctx, sess.Token, sess.Profile.Name, req)
	if err != nil {
		return nil, err
	}

	updated := *sess
	updated.Profile = *profile
	if err := s.sessions.Save(ctx, &updated); err != nil {
		s.log.Warn("profile updated but session snapshot refresh failed",
			zap.String("name", profile.Name),
			zap.Error(err))
	}
	return profile, nil
}
