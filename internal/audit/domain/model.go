package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	identitydomain "github.com/networkasro-maker/asro/internal/identity/domain"
)

// DefaultListLimit caps aggregate activity views.
const DefaultListLimit = 100

// ActivityLog is an immutable record of who did what, when. Entries are
// never updated or deleted.
type ActivityLog struct {
	ID        snowflake.ID        `gorm:"primaryKey" json:"id"`
	UserID    snowflake.ID        `gorm:"not null;index" json:"userId"`
	UserName  string              `gorm:"type:text;not null" json:"userName"`
	UserRole  identitydomain.Role `gorm:"type:text;not null" json:"userRole"`
	Action    string              `gorm:"type:text;not null" json:"action"`
	Timestamp time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_activity_logs_timestamp,sort:desc" json:"timestamp"`
}

// TableName sets the database table name.
func (ActivityLog) TableName() string { return "activity_logs" }
