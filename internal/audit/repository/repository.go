package repository

import (
	"context"

	"github.com/networkasro-maker/asro/internal/audit/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide constructs the gorm-backed activity log repository.
func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, entry *domain.ActivityLog) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repository) List(ctx context.Context, db *gorm.DB, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 || limit > domain.DefaultListLimit {
		limit = domain.DefaultListLimit
	}
	var entries []domain.ActivityLog
	err := db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
