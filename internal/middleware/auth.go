package middleware

import (
	"strings"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/handler"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/service"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/response"
	"github.com/gin-gonic/gin"
)

// Auth resolves the bearer token to a stored session and attaches it to the
// request context. Requests without a valid session are rejected.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c, "Missing or malformed Authorization header")
			c.Abort()
			return
		}

		sess, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Your session has expired, please log in again")
			c.Abort()
			return
		}

		c.Set(handler.SessionKey, sess)
		c.Next()
	}
}

// RequireManager runs after Auth and rejects non-manager sessions.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(handler.SessionKey)
		sess, _ := v.(*domain.Session)
		if !ok || sess == nil || !sess.Profile.IsManager() {
			response.Forbidden(c, "This action requires a venue manager account")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
