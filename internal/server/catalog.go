package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
)

type createPackageRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type updatePackageRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// @Summary      List packages
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  catalogdomain.Package
// @Router       /packages [get]
func (s *Server) ListPackages(c *gin.Context) {
	packages, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// @Summary      Create package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createPackageRequest true "Create Package Request"
// @Success      200  {object}  catalogdomain.Package
// @Router       /packages [post]
func (s *Server) CreatePackage(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	pkg, err := s.catalogSvc.Create(c.Request.Context(), actor, catalogdomain.CreateRequest{
		Name:  strings.TrimSpace(req.Name),
		Price: req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// @Summary      Update package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Param        request body updatePackageRequest true "Update Package Request"
// @Success      200  {object}  catalogdomain.Package
// @Router       /packages/{id} [patch]
func (s *Server) UpdatePackage(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req updatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	pkg, err := s.catalogSvc.Update(c.Request.Context(), actor, catalogdomain.UpdateRequest{
		ID:    c.Param("id"),
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// @Summary      Delete package
// @Description  Delete a package that no customer references
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Success      200  {object}  map[string]string
// @Router       /packages/{id} [delete]
func (s *Server) DeletePackage(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := catalogdomain.ParseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, catalogdomain.ErrInvalidID)
		return
	}

	if err := s.catalogSvc.Delete(c.Request.Context(), actor, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
