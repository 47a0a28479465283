// Package session stores the authenticated session: the bearer token and the
// profile snapshot taken at login, always saved and destroyed as a pair.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Store persists sessions keyed by access token.
type Store interface {
	Save(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// TokenTTL derives a session lifetime from the access token's exp claim.
// The token is issued and signed by the remote API; only the expiry is read
// here, so the signature is not verified. Tokens without a usable expiry get
// the fallback TTL.
func TokenTTL(token string, fallback time.Duration) time.Duration {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return fallback
	}
	return ttl
}

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// MemoryStore is an in-process Store for single-instance deployments and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a memory store with the given fallback TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save stores the session under its token.
func (s *MemoryStore) Save(ctx context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = memoryEntry{
		session:   *sess,
		expiresAt: s.now().Add(TokenTTL(sess.Token, s.ttl)),
	}
	return nil
}

// Get returns the session for a token, or domain.ErrSessionNotFound.
func (s *MemoryStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}

	sess := entry.session
	return &sess, nil
}

// Delete destroys the session, removing token and snapshot together.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
