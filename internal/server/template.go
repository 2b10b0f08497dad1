package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	notificationdomain "github.com/networkasro-maker/asro/internal/notification/domain"
)

type createTemplateRequest struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

type updateTemplateRequest struct {
	Name     *string `json:"name"`
	Template *string `json:"template"`
}

type draftTemplateRequest struct {
	Instruction string `json:"instruction"`
}

// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  notificationdomain.WhatsAppTemplate
// @Router       /templates [get]
func (s *Server) ListTemplates(c *gin.Context) {
	templates, err := s.notificationSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// @Summary      Create template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createTemplateRequest true "Create Template Request"
// @Success      200  {object}  notificationdomain.WhatsAppTemplate
// @Router       /templates [post]
func (s *Server) CreateTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	template, err := s.notificationSvc.Create(c.Request.Context(), actor, notificationdomain.CreateTemplateRequest{
		Name:     strings.TrimSpace(req.Name),
		Template: req.Template,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// @Summary      Update template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Template ID"
// @Param        request body updateTemplateRequest true "Update Template Request"
// @Success      200  {object}  notificationdomain.WhatsAppTemplate
// @Router       /templates/{id} [patch]
func (s *Server) UpdateTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	template, err := s.notificationSvc.Update(c.Request.Context(), actor, notificationdomain.UpdateTemplateRequest{
		ID:       c.Param("id"),
		Name:     req.Name,
		Template: req.Template,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// @Summary      Delete template
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Template ID"
// @Success      200  {object}  map[string]string
// @Router       /templates/{id} [delete]
func (s *Server) DeleteTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := notificationdomain.ParseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, notificationdomain.ErrInvalidID)
		return
	}

	if err := s.notificationSvc.Delete(c.Request.Context(), actor, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Preview template
// @Description  Render a template against a customer's data
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Template ID"
// @Param        customerId path string true "Customer ID"
// @Success      200  {object}  map[string]string
// @Router       /templates/{id}/preview/{customerId} [get]
func (s *Server) PreviewTemplate(c *gin.Context) {
	templateID, err := notificationdomain.ParseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, notificationdomain.ErrInvalidID)
		return
	}
	customerID, err := customerdomain.ParseID(c.Param("customerId"))
	if err != nil {
		AbortWithError(c, customerdomain.ErrInvalidID)
		return
	}

	message, err := s.notificationSvc.Preview(c.Request.Context(), templateID, customerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// @Summary      Draft template
// @Description  Ask the text generator for a candidate template body
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body draftTemplateRequest true "Draft Template Request"
// @Success      200  {object}  map[string]string
// @Router       /templates/draft [post]
func (s *Server) DraftTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req draftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	draft, err := s.notificationSvc.Draft(c.Request.Context(), actor, strings.TrimSpace(req.Instruction))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}
