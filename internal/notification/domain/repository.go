package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tmpl *WhatsAppTemplate) error
	Update(ctx context.Context, db *gorm.DB, tmpl *WhatsAppTemplate) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*WhatsAppTemplate, error)
	List(ctx context.Context, db *gorm.DB) ([]WhatsAppTemplate, error)
}
