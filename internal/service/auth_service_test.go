package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSavesSession(t *testing.T) {
	api := &mockAPI{
		loginFn: func(ctx context.Context, email, password string) (*holidaze.LoginResult, error) {
			assert.Equal(t, "ola@stud.noroff.no", email)
			return &holidaze.LoginResult{
				Profile:     domain.Profile{Name: "ola", Email: email, VenueManager: true},
				AccessToken: "tok-123",
			}, nil
		},
	}
	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(api, store, nil)

	sess, err := svc.Login(context.Background(), "ola@stud.noroff.no", "password1")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
	assert.True(t, sess.Profile.VenueManager)

	stored, err := store.Get(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "ola", stored.Profile.Name)
}

func TestLoginFailureSavesNothing(t *testing.T) {
	api := &mockAPI{
		loginFn: func(ctx context.Context, email, password string) (*holidaze.LoginResult, error) {
			return nil, &holidaze.APIError{Status: 401, Message: "Invalid email or password"}
		},
	}
	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(api, store, nil)

	_, err := svc.Login(context.Background(), "ola@stud.noroff.no", "wrong")
	require.Error(t, err)

	var apiErr *holidaze.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Status)
}

func TestLogoutDeletesSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(&mockAPI{}, store, nil)

	require.NoError(t, store.Save(context.Background(), &domain.Session{Token: "tok-123"}))
	require.NoError(t, svc.Logout(context.Background(), "tok-123"))

	_, err := store.Get(context.Background(), "tok-123")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAuthenticate(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(&mockAPI{}, store, nil)

	require.NoError(t, store.Save(context.Background(), &domain.Session{
		Token:   "tok-123",
		Profile: domain.Profile{Name: "ola"},
	}))

	sess, err := svc.Authenticate(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "ola", sess.Profile.Name)

	_, err = svc.Authenticate(context.Background(), "tok-unknown")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRegisterForwards(t *testing.T) {
	api := &mockAPI{
		registerFn: func(ctx context.Context, req *holidaze.RegisterRequest) (*domain.Profile, error) {
			return &domain.Profile{Name: req.Name, Email: req.Email, VenueManager: req.VenueManager}, nil
		},
	}
	svc := NewAuthService(api, session.NewMemoryStore(time.Hour), nil)

	profile, err := svc.Register(context.Background(), &holidaze.RegisterRequest{
		Name:         "kari_m",
		Email:        "kari@stud.noroff.no",
		Password:     "password1",
		VenueManager: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "kari_m", profile.Name)
	assert.True(t, profile.VenueManager)
}

func TestUpdateProfileRefreshesSnapshot(t *testing.T) {
	api := &mockAPI{
		updateProfileFn: func(ctx context.Context, token, name string, req *holidaze.ProfileUpdateRequest) (*domain.Profile, error) {
			assert.Equal(t, "tok-123", token)
			assert.Equal(t, "ola", name)
			return &domain.Profile{Name: "ola", Bio: "new bio"}, nil
		},
	}
	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(api, store, nil)

	sess := &domain.Session{Token: "tok-123", Profile: domain.Profile{Name: "ola", Bio: "old bio"}}
	require.NoError(t, store.Save(context.Background(), sess))

	profile, err := svc.UpdateProfile(context.Background(), sess, &holidaze.ProfileUpdateRequest{Bio: "new bio"})
	require.NoError(t, err)
	assert.Equal(t, "new bio", profile.Bio)

	stored, err := store.Get(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "new bio", stored.Profile.Bio, "stored snapshot follows the remote update")
}
