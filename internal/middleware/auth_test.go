package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/service"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer tok-123", "tok-123"},
		{"bearer tok-123", "tok-123"},
		{"Bearer  tok-123 ", "tok-123"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bearerToken(tt.header), "header %q", tt.header)
	}
}

func authRouter(t *testing.T, manager bool) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(time.Hour)
	sess := &domain.Session{
		Token:   "tok-123",
		Profile: domain.Profile{Name: "ola", VenueManager: manager},
	}
	require.NoError(t, store.Save(context.Background(), sess))

	auth := service.NewAuthService(nil, store, nil)

	r := gin.New()
	r.GET("/me", Auth(auth), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/manager", Auth(auth), RequireManager(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, sess.Token
}

func TestAuthMiddleware(t *testing.T) {
	r, token := authRouter(t, false)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid session", "Bearer " + token, http.StatusOK},
		{"unknown token", "Bearer tok-other", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireManager(t *testing.T) {
	t.Run("customer rejected", func(t *testing.T) {
		r, token := authRouter(t, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/manager", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("manager allowed", func(t *testing.T) {
		r, token := authRouter(t, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/manager", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
