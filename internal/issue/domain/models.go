package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
	"gorm.io/gorm"
)

// ModemLightStatus is how subscribers describe their modem before opening
// a report. The wire values mirror the labels shown in the UI.
type ModemLightStatus string

const (
	ModemLightRed   ModemLightStatus = "Lampu Merah (Loss)"
	ModemLightGreen ModemLightStatus = "Lampu Hijau (Normal)"
	ModemLightOff   ModemLightStatus = "Semua Lampu Mati"
)

// Valid reports whether the value is a known modem light state.
func (m ModemLightStatus) Valid() bool {
	switch m {
	case ModemLightRed, ModemLightGreen, ModemLightOff:
		return true
	default:
		return false
	}
}

// IssueReport is a subscriber-submitted trouble ticket. Attachment is an
// opaque reference to an uploaded video, never interpreted here.
type IssueReport struct {
	ID               snowflake.ID     `gorm:"primaryKey" json:"id"`
	CustomerID       snowflake.ID     `gorm:"not null;index" json:"customerId"`
	ModemLightStatus ModemLightStatus `gorm:"type:text;not null" json:"modemLightStatus"`
	Description      string           `gorm:"type:text;not null" json:"description"`
	Attachment       *string          `gorm:"type:text" json:"attachment,omitempty"`
	ReportedAt       time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"reportedAt"`
}

// TableName sets the database table name.
func (IssueReport) TableName() string { return "issue_reports" }

type CreateReportRequest struct {
	CustomerID       string `json:"customerId"`
	ModemLightStatus string `json:"modemLightStatus"`
	Description      string `json:"description"`
	Attachment       string `json:"attachment"`
}

type Service interface {
	Create(ctx context.Context, actor identitydomain.Actor, req CreateReportRequest) (*IssueReport, error)
	ListByCustomer(ctx context.Context, customerID snowflake.ID) ([]IssueReport, error)
	List(ctx context.Context, actor identitydomain.Actor) ([]IssueReport, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, report *IssueReport) error
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]IssueReport, error)
	List(ctx context.Context, db *gorm.DB) ([]IssueReport, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidLightStatus = errors.New("invalid_light_status")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")
)
