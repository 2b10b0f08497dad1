package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard summary
// @Description  Aggregate subscriber stats and recent activity
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboarddomain.Summary
// @Router       /dashboard [get]
func (s *Server) Dashboard(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	summary, err := s.dashboardSvc.Summarize(c.Request.Context(), actor)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
