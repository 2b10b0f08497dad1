package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/networkasro-maker/asro/internal/auth/domain"
	catalogdomain "github.com/networkasro-maker/asro/internal/catalog/domain"
	customerdomain "github.com/networkasro-maker/asro/internal/customer/domain"
	dashboarddomain "github.com/networkasro-maker/asro/internal/dashboard/domain"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	ispprofiledomain "github.com/networkasro-maker/asro/internal/ispprofile/domain"
	issuedomain "github.com/networkasro-maker/asro/internal/issue/domain"
	notificationdomain "github.com/networkasro-maker/asro/internal/notification/domain"
)

// APIError is the uniform error body returned by every endpoint.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

var (
	ErrNotFound           = &APIError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	ErrUnauthorized       = &APIError{Status: http.StatusUnauthorized, Code: "unauthorized", Message: "authentication required"}
	ErrForbidden          = &APIError{Status: http.StatusForbidden, Code: "forbidden", Message: "insufficient permissions"}
	ErrTooManyRequests    = &APIError{Status: http.StatusTooManyRequests, Code: "rate_limited", Message: "too many attempts, try again later"}
	ErrServiceUnavailable = &APIError{Status: http.StatusServiceUnavailable, Code: "service_unavailable", Message: "service unavailable"}
)

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "request body is invalid"}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Field: field, Message: message}
}

// statusMapping translates domain sentinel errors to HTTP statuses.
// Validation failures are 400, permission denials 403, state conflicts 409.
var statusMapping = []struct {
	err    error
	status int
	code   string
}{
	{authdomain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{authdomain.ErrAccountFrozen, http.StatusForbidden, "account_frozen"},
	{authdomain.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},

	{customerdomain.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
	{customerdomain.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{customerdomain.ErrStaleCustomer, http.StatusConflict, "stale_customer"},
	{customerdomain.ErrInvalidID, http.StatusBadRequest, "invalid_id"},
	{customerdomain.ErrInvalidName, http.StatusBadRequest, "invalid_name"},
	{customerdomain.ErrInvalidAddress, http.StatusBadRequest, "invalid_address"},
	{customerdomain.ErrInvalidDueDate, http.StatusBadRequest, "invalid_due_date"},
	{customerdomain.ErrInvalidPackage, http.StatusBadRequest, "invalid_package"},
	{customerdomain.ErrInvalidSales, http.StatusBadRequest, "invalid_sales"},
	{customerdomain.ErrInvalidFilter, http.StatusBadRequest, "invalid_filter"},
	{customerdomain.ErrNotFound, http.StatusNotFound, "not_found"},

	{catalogdomain.ErrInvalidID, http.StatusBadRequest, "invalid_id"},
	{catalogdomain.ErrInvalidName, http.StatusBadRequest, "invalid_name"},
	{catalogdomain.ErrInvalidPrice, http.StatusBadRequest, "invalid_price"},
	{catalogdomain.ErrPackageInUse, http.StatusConflict, "package_in_use"},
	{catalogdomain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{catalogdomain.ErrNotFound, http.StatusNotFound, "not_found"},

	{identitydomain.ErrInvalidID, http.StatusBadRequest, "invalid_id"},
	{identitydomain.ErrInvalidUsername, http.StatusBadRequest, "invalid_username"},
	{identitydomain.ErrInvalidName, http.StatusBadRequest, "invalid_name"},
	{identitydomain.ErrInvalidRole, http.StatusBadRequest, "invalid_role"},
	{identitydomain.ErrInvalidPassword, http.StatusBadRequest, "invalid_password"},
	{identitydomain.ErrUsernameTaken, http.StatusConflict, "username_taken"},
	{identitydomain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{identitydomain.ErrNotFound, http.StatusNotFound, "not_found"},

	{notificationdomain.ErrInvalidID, http.StatusBadRequest, "invalid_id"},
	{notificationdomain.ErrInvalidName, http.StatusBadRequest, "invalid_name"},
	{notificationdomain.ErrInvalidTemplate, http.StatusBadRequest, "invalid_template"},
	{notificationdomain.ErrInvalidInstruction, http.StatusBadRequest, "invalid_instruction"},
	{notificationdomain.ErrDrafterUnavailable, http.StatusServiceUnavailable, "drafter_unavailable"},
	{notificationdomain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{notificationdomain.ErrNotFound, http.StatusNotFound, "not_found"},

	{issuedomain.ErrInvalidID, http.StatusBadRequest, "invalid_id"},
	{issuedomain.ErrInvalidLightStatus, http.StatusBadRequest, "invalid_light_status"},
	{issuedomain.ErrInvalidDescription, http.StatusBadRequest, "invalid_description"},
	{issuedomain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{issuedomain.ErrNotFound, http.StatusNotFound, "not_found"},

	{ispprofiledomain.ErrInvalidName, http.StatusBadRequest, "invalid_name"},
	{ispprofiledomain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{ispprofiledomain.ErrNotFound, http.StatusNotFound, "not_found"},

	{dashboarddomain.ErrForbidden, http.StatusForbidden, "forbidden"},
}

// AbortWithError writes the mapped status and JSON body for err and stops
// handler processing. Unmapped errors become opaque 500 responses.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	for _, m := range statusMapping {
		if errors.Is(err, m.err) {
			c.AbortWithStatusJSON(m.status, gin.H{"error": &APIError{
				Status:  m.status,
				Code:    m.code,
				Message: m.err.Error(),
			}})
			return
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "internal",
		Message: "internal server error",
	}})
}
