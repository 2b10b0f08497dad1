package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BankAccount is one of the ISP's payment destinations shown on invoices.
type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// IspProfile is the system-wide singleton describing the operator.
type IspProfile struct {
	ID           snowflake.ID                         `gorm:"primaryKey" json:"id"`
	Name         string                               `gorm:"type:text;not null" json:"name"`
	LogoURL      string                               `gorm:"type:text;not null;default:''" json:"logoUrl"`
	Address      string                               `gorm:"type:text;not null;default:''" json:"address"`
	Contact      string                               `gorm:"type:text;not null;default:''" json:"contact"`
	BankAccounts datatypes.JSONSlice[BankAccount]     `gorm:"type:jsonb;not null" json:"bankAccounts"`
	UpdatedAt    time.Time                            `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (IspProfile) TableName() string { return "isp_profile" }

type UpdateProfileRequest struct {
	Name         *string       `json:"name"`
	LogoURL      *string       `json:"logoUrl"`
	Address      *string       `json:"address"`
	Contact      *string       `json:"contact"`
	BankAccounts []BankAccount `json:"bankAccounts"`
}

// Service reads and updates the singleton operator profile.
type Service interface {
	Get(ctx context.Context) (*IspProfile, error)
	Update(ctx context.Context, actor identitydomain.Actor, req UpdateProfileRequest) (*IspProfile, error)
}

type Repository interface {
	Find(ctx context.Context, db *gorm.DB) (*IspProfile, error)
	Insert(ctx context.Context, db *gorm.DB, profile *IspProfile) error
	Update(ctx context.Context, db *gorm.DB, profile *IspProfile) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrForbidden   = errors.New("forbidden")
	ErrNotFound    = errors.New("not_found")
)
