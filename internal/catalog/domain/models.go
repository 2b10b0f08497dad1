package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Package is a sellable internet plan. Price is stored in whole rupiah.
type Package struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Price     int64        `gorm:"not null" json:"price"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Package) TableName() string { return "packages" }
