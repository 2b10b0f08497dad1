package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/networkasro-maker/asro/internal/audit/domain"
)

// @Summary      List activity logs
// @Description  Most recent administrative actions, newest first
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum entries to return"
// @Success      200  {array}  auditdomain.ActivityLog
// @Router       /activity-logs [get]
func (s *Server) ListActivityLogs(c *gin.Context) {
	limit := auditdomain.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			AbortWithError(c, newValidationError("limit", "invalid_limit", "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	logs, err := s.auditSvc.List(c.Request.Context(), limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
