package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	// UpdateVersioned writes the patch scoped by id and expected version,
	// bumping the version. Returns ErrStaleCustomer when no row matched.
	UpdateVersioned(ctx context.Context, db *gorm.DB, id snowflake.ID, version int64, patch map[string]any) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB) ([]Customer, error)
	CountByPackage(ctx context.Context, db *gorm.DB, packageID snowflake.ID) (int64, error)
}
