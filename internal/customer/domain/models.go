package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// CustomerStatus is the service axis: an isolated customer has service
// suspended regardless of payment state.
type CustomerStatus string

const (
	StatusActive   CustomerStatus = "Aktif"
	StatusIsolated CustomerStatus = "Isolir"
)

// PaymentStatus is the billing axis for the current period.
type PaymentStatus string

const (
	PaymentPaid      PaymentStatus = "Lunas"
	PaymentUnpaid    PaymentStatus = "Belum Bayar"
	PaymentVerifying PaymentStatus = "Verifikasi"
)

// Customer is a subscriber record. Status and PaymentStatus are orthogonal:
// a customer can be isolated while paid. Version is the optimistic
// concurrency token; updates carrying a stale version are rejected.
type Customer struct {
	ID            snowflake.ID   `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"type:text;not null" json:"name"`
	Address       string         `gorm:"type:text;not null" json:"address"`
	Phone         *string        `gorm:"type:text" json:"phone,omitempty"`
	DueDate       time.Time      `gorm:"type:date;not null" json:"dueDate"`
	PackageID     snowflake.ID   `gorm:"not null;index" json:"packageId"`
	SalesID       snowflake.ID   `gorm:"not null;index" json:"salesId"`
	HousePhoto    *string        `gorm:"type:text" json:"housePhoto,omitempty"`
	Location      datatypes.JSON `gorm:"type:jsonb" json:"location,omitempty"`
	Status        CustomerStatus `gorm:"type:text;not null;default:'Aktif'" json:"status"`
	PaymentStatus PaymentStatus  `gorm:"type:text;not null;default:'Belum Bayar'" json:"paymentStatus"`
	UserID        *snowflake.ID  `gorm:"index" json:"userId,omitempty"`
	Version       int64          `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// EffectiveStatus is the single label shown in lists: isolation dominates,
// otherwise the payment status is displayed.
func (c Customer) EffectiveStatus() string {
	if c.Status == StatusIsolated {
		return string(StatusIsolated)
	}
	return string(c.PaymentStatus)
}
