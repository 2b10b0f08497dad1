package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ispprofiledomain "github.com/networkasro-maker/asro/internal/ispprofile/domain"
)

// @Summary      Get ISP profile
// @Tags         isp-profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ispprofiledomain.IspProfile
// @Router       /isp-profile [get]
func (s *Server) GetIspProfile(c *gin.Context) {
	profile, err := s.profileSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary      Update ISP profile
// @Tags         isp-profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ispprofiledomain.UpdateProfileRequest true "Update Profile Request"
// @Success      200  {object}  ispprofiledomain.IspProfile
// @Router       /isp-profile [put]
func (s *Server) UpdateIspProfile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req ispprofiledomain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	profile, err := s.profileSvc.Update(c.Request.Context(), actor, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
