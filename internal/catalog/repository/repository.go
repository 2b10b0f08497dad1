package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/networkasro-maker/asro/internal/catalog/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide constructs the gorm-backed package repository.
func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, pkg *domain.Package) error {
	return db.WithContext(ctx).Create(pkg).Error
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, pkg *domain.Package) error {
	return db.WithContext(ctx).Save(pkg).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Package{}).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Package, error) {
	var pkg domain.Package
	err := db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB) ([]domain.Package, error) {
	var packages []domain.Package
	if err := db.WithContext(ctx).Order("price ASC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}
