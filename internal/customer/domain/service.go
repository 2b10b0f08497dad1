package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

type CreateCustomerRequest struct {
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	DueDate   time.Time `json:"dueDate"`
	PackageID string    `json:"packageId"`
	SalesID   string    `json:"salesId"`
	UserID    string    `json:"userId"`
}

type UpdateCustomerRequest struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	DueDate   *time.Time `json:"dueDate"`
	PackageID *string    `json:"packageId"`
	SalesID   *string    `json:"salesId"`
}

// Service is the customer lifecycle controller. Apply consults the
// transition table, writes the outcome under the customer's version, and
// appends one activity entry per successful mutation.
type Service interface {
	Create(ctx context.Context, actor identitydomain.Actor, req CreateCustomerRequest) (*Customer, error)
	Update(ctx context.Context, actor identitydomain.Actor, req UpdateCustomerRequest) (*Customer, error)
	Apply(ctx context.Context, actor identitydomain.Actor, id snowflake.ID, action Action) (*Customer, error)
	GetByID(ctx context.Context, id snowflake.ID) (*Customer, error)
	GetByUserID(ctx context.Context, userID snowflake.ID) (*Customer, error)
	List(ctx context.Context, actor identitydomain.Actor, key FilterKey) ([]Customer, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidState   = errors.New("invalid_state")
	ErrStaleCustomer  = errors.New("stale_customer")
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidAddress = errors.New("invalid_address")
	ErrInvalidDueDate = errors.New("invalid_due_date")
	ErrInvalidPackage = errors.New("invalid_package")
	ErrInvalidSales   = errors.New("invalid_sales")
	ErrInvalidFilter  = errors.New("invalid_filter")
	ErrNotFound       = errors.New("not_found")
)
