package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// WhatsAppTemplate is a reusable outbound message with placeholders that
// are substituted per customer before sending.
type WhatsAppTemplate struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Template  string       `gorm:"type:text;not null" json:"template"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (WhatsAppTemplate) TableName() string { return "whatsapp_templates" }
