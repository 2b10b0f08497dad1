package repository

import (
	"context"
	"errors"

	"github.com/networkasro-maker/asro/internal/ispprofile/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide constructs the gorm-backed ISP profile repository.
func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Find(ctx context.Context, db *gorm.DB) (*domain.IspProfile, error) {
	var profile domain.IspProfile
	err := db.WithContext(ctx).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, profile *domain.IspProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, profile *domain.IspProfile) error {
	return db.WithContext(ctx).Save(profile).Error
}
