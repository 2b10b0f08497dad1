package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
}

// @Summary      List users
// @Description  List accounts the actor may manage
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  identitydomain.User
// @Router       /users [get]
func (s *Server) ListUsers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	users, err := s.identitySvc.List(c.Request.Context(), actor)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createUserRequest true "Create User Request"
// @Success      200  {object}  identitydomain.User
// @Router       /users [post]
func (s *Server) CreateUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.identitySvc.Create(c.Request.Context(), actor, identitydomain.CreateUserRequest{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
		Name:     strings.TrimSpace(req.Name),
		Role:     identitydomain.Role(req.Role),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body updateUserRequest true "Update User Request"
// @Success      200  {object}  identitydomain.User
// @Router       /users/{id} [patch]
func (s *Server) UpdateUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := identitydomain.UpdateUserRequest{
		ID:       c.Param("id"),
		Username: req.Username,
		Name:     req.Name,
	}
	if req.Role != nil {
		role := identitydomain.Role(*req.Role)
		update.Role = &role
	}

	user, err := s.identitySvc.Update(c.Request.Context(), actor, update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary      Toggle user status
// @Description  Freeze or reactivate an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  identitydomain.User
// @Router       /users/{id}/toggle-status [post]
func (s *Server) ToggleUserStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := identitydomain.ParseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, identitydomain.ErrInvalidID)
		return
	}

	user, err := s.identitySvc.ToggleStatus(c.Request.Context(), actor, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
