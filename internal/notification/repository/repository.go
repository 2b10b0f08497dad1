package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/networkasro-maker/asro/internal/notification/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide constructs the gorm-backed template repository.
func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, tmpl *domain.WhatsAppTemplate) error {
	return db.WithContext(ctx).Create(tmpl).Error
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, tmpl *domain.WhatsAppTemplate) error {
	return db.WithContext(ctx).Save(tmpl).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.WhatsAppTemplate{}).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.WhatsAppTemplate, error) {
	var tmpl domain.WhatsAppTemplate
	err := db.WithContext(ctx).Where("id = ?", id).First(&tmpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB) ([]domain.WhatsAppTemplate, error) {
	var templates []domain.WhatsAppTemplate
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
