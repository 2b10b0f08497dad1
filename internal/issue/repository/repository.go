package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/networkasro-maker/asro/internal/issue/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide constructs the gorm-backed issue report repository.
func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, report *domain.IssueReport) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *repository) ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]domain.IssueReport, error) {
	var reports []domain.IssueReport
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("reported_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB) ([]domain.IssueReport, error) {
	var reports []domain.IssueReport
	if err := db.WithContext(ctx).Order("reported_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
