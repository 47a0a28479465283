package handler

import (
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/dto"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/service"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	auth *service.AuthService
}

func NewProfileHandler(auth *service.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: auth}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	response.Success(c, sessionFrom(c).Profile)
}

// Update handles PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.auth.UpdateProfile(c.Request.Context(), sessionFrom(c), req.ToUpstream())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, profile)
}
