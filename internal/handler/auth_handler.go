package handler

import (
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/dto"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/service"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.auth.Register(c.Request.Context(), req.ToUpstream())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, profile)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{
		"accessToken": sess.Token,
		"profile":     sess.Profile,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessionFrom(c)
	if sess == nil {
		response.Unauthorized(c, "You are not logged in")
		return
	}
	if err := h.auth.Logout(c.Request.Context(), sess.Token); err != nil {
		writeError(c, err)
		return
	}
	response.NoContent(c)
}
