package handler

import (
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/gin-gonic/gin"
)

// SessionKey is where the auth middleware stores the resolved session.
const SessionKey = "session"

// sessionFrom returns the session the auth middleware attached, or nil when
// the route was registered without it.
func sessionFrom(c *gin.Context) *domain.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*domain.Session)
	return sess
}
