package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	receiptrender "github.com/networkasro-maker/asro/internal/receipt/render"
)

const dueDateLayout = "2006-01-02"

type createCustomerRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	DueDate   string `json:"dueDate"`
	PackageID string `json:"packageId"`
	SalesID   string `json:"salesId"`
	UserID    string `json:"userId"`
}

type updateCustomerRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	DueDate   *string `json:"dueDate"`
	PackageID *string `json:"packageId"`
	SalesID   *string `json:"salesId"`
}

// @Summary      List customers
// @Description  List customers visible to the actor, optionally filtered
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        filter query string false "All | Paid | Unpaid | Verifying | Isolated"
// @Success      200  {array}  customerdomain.Customer
// @Router       /customers [get]
func (s *Server) ListCustomers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	key := customerdomain.FilterKey(c.DefaultQuery("filter", string(customerdomain.FilterAll)))
	customers, err := s.customerSvc.List(c.Request.Context(), actor, key)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// @Summary      Own customer record
// @Description  Return the customer record linked to the signed-in subscriber
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  customerdomain.Customer
// @Router       /customers/me [get]
func (s *Server) MyCustomer(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	customer, err := s.customerSvc.GetByUserID(c.Request.Context(), actor.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Success      200  {object}  customerdomain.Customer
// @Router       /customers/{id} [get]
func (s *Server) GetCustomer(c *gin.Context) {
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

	c.JSON(http.StatusOK, customer)
}

// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createCustomerRequest true "Create Customer Request"
// @Success      200  {object}  customerdomain.Customer
// @Router       /customers [post]
func (s *Server) CreateCustomer(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dueDate, err := time.Parse(dueDateLayout, strings.TrimSpace(req.DueDate))
	if err != nil {
		AbortWithError(c, newValidationError("dueDate", "invalid_due_date", "dueDate must be YYYY-MM-DD"))
		return
	}

	customer, err := s.customerSvc.Create(c.Request.Context(), actor, customerdomain.CreateCustomerRequest{
		Name:      strings.TrimSpace(req.Name),
		Address:   strings.TrimSpace(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		DueDate:   dueDate,
		PackageID: req.PackageID,
		SalesID:   req.SalesID,
		UserID:    req.UserID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Param        request body updateCustomerRequest true "Update Customer Request"
// @Success      200  {object}  customerdomain.Customer
// @Router       /customers/{id} [patch]
func (s *Server) UpdateCustomer(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := customerdomain.UpdateCustomerRequest{
		ID:        c.Param("id"),
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		PackageID: req.PackageID,
		SalesID:   req.SalesID,
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dueDateLayout, strings.TrimSpace(*req.DueDate))
		if err != nil {
			AbortWithError(c, newValidationError("dueDate", "invalid_due_date", "dueDate must be YYYY-MM-DD"))
			return
		}
		update.DueDate = &dueDate
	}

	customer, err := s.customerSvc.Update(c.Request.Context(), actor, update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// @Summary      Apply customer action
// @Description  Run a payment or isolation transition on a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Param        action path string true "markAsVerifying | cancelVerification | confirmPayment | toggleIsolate"
// @Success      200  {object}  customerdomain.Customer
// @Router       /customers/{id}/actions/{action} [post]
func (s *Server) ApplyCustomerAction(c *gin.Context) {
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

	customer, err := s.customerSvc.Apply(c.Request.Context(), actor, id, customerdomain.Action(c.Param("action")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// @Summary      Payment receipt
// @Description  Render a printable receipt for a paid customer
// @Tags         customers
// @Produce      html
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Success      200  {string}  string
// @Router       /customers/{id}/receipt [get]
func (s *Server) CustomerReceipt(c *gin.Context) {
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

	ctx := c.Request.Context()
	customer, err := s.customerSvc.GetByID(ctx, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !s.canViewCustomer(actor, customer) {
		AbortWithError(c, ErrForbidden)
		return
	}
	if customer.PaymentStatus != customerdomain.PaymentPaid {
		AbortWithError(c, customerdomain.ErrInvalidState)
		return
	}

	pkg, err := s.catalogSvc.GetByID(ctx, customer.PackageID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	profile, err := s.profileSvc.Get(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	html, err := s.receiptRenderer.RenderHTML(receiptrender.RenderInput{
		Profile: receiptrender.ProfileView{
			Name:    profile.Name,
			LogoURL: profile.LogoURL,
			Address: profile.Address,
			Contact: profile.Contact,
		},
		Customer: receiptrender.CustomerView{
			ID:      customer.ID.String(),
			Name:    customer.Name,
			Address: customer.Address,
			DueDate: customer.DueDate,
		},
		Package: receiptrender.PackageView{Name: pkg.Name, Price: pkg.Price},
		PaidAt:  time.Now(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("Mencetak invoice untuk %s (ID: %s)", customer.Name, customer.ID))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// canViewCustomer mirrors the list scoping: privileged roles see everyone,
// sales see their own portfolio, subscribers only themselves.
func (s *Server) canViewCustomer(actor identitydomain.Actor, customer *customerdomain.Customer) bool {
	switch {
	case actor.Role.Privileged():
		return true
	case customer == nil:
		return false
	case customer.SalesID == actor.ID:
		return true
	case customer.UserID != nil && *customer.UserID == actor.ID:
		return true
	default:
		return false
	}
}
