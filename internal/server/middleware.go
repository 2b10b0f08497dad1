package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

const actorContextKey = "actor"

// RequireSession resolves the bearer token into an actor and attaches it
// to the request context.
func (s *Server) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		actor, err := s.authSvc.Resolve(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireRoles rejects requests whose actor is not one of the given roles.
func (s *Server) RequireRoles(roles ...identitydomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorFrom(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		AbortWithError(c, ErrForbidden)
	}
}

func actorFrom(c *gin.Context) (identitydomain.Actor, bool) {
	value, ok := c.Get(actorContextKey)
	if !ok {
		return identitydomain.Actor{}, false
	}
	actor, ok := value.(identitydomain.Actor)
	return actor, ok
}
