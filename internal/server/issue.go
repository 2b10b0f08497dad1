package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	issuedomain "github.com/networkasro-maker/asro/internal/issue/domain"
)

type createIssueRequest struct {
	CustomerID       string `json:"customerId"`
	ModemLightStatus string `json:"modemLightStatus"`
	Description      string `json:"description"`
	Attachment       string `json:"attachment"`
}

// @Summary      List issue reports
// @Description  List trouble tickets visible to the actor
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  issuedomain.IssueReport
// @Router       /issues [get]
func (s *Server) ListIssues(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	reports, err := s.issueSvc.List(c.Request.Context(), actor)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": reports})
}

// @Summary      Customer issue history
// @Description  List the trouble tickets filed for one customer connection
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Success      200  {array}  issuedomain.IssueReport
// @Router       /customers/{id}/issues [get]
func (s *Server) CustomerIssues(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := customerdomain.ParseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, customerdomain.ErrInvalidID)
		return
	}

	customer, err := s.customerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !s.canViewCustomer(actor, customer) {
		AbortWithError(c, ErrForbidden)
		return
	}

	reports, err := s.issueSvc.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": reports})
}

// @Summary      Report an issue
// @Description  Open a trouble ticket for a customer connection
// @Tags         issues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createIssueRequest true "Create Issue Request"
// @Success      200  {object}  issuedomain.IssueReport
// @Router       /issues [post]
func (s *Server) CreateIssue(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	report, err := s.issueSvc.Create(c.Request.Context(), actor, issuedomain.CreateReportRequest{
		CustomerID:       strings.TrimSpace(req.CustomerID),
		ModemLightStatus: req.ModemLightStatus,
		Description:      strings.TrimSpace(req.Description),
		Attachment:       strings.TrimSpace(req.Attachment),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
