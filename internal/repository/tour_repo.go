package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"tourcrm/internal/domain"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

// TourFilter narrows List results. Every field is optional.
type TourFilter struct {
	// Q matches title or description, case-insensitive substring.
	Q string
	// Status filters by exact tour status.
	Status *domain.TourStatus
	// CategoryID filters by owning category.
	CategoryID *int64
}

func (r *TourRepository) List(ctx context.Context, f TourFilter) ([]domain.Tour, error) {
	q := r.db.WithContext(ctx).Model(&domain.Tour{})

	if f.Q != "" {
		pattern := "%" + strings.ToLower(f.Q) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	var tours []domain.Tour
	tx := q.
		Preload("Category").
		Preload("TourDates", func(db *gorm.DB) *gorm.DB {
			return db.Where("date >= ?", time.Now()).Order("date ASC")
		}).
		Order("created_at DESC").
		Find(&tours)
	return tours, translate(tx.Error)
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	var t domain.Tour
	tx := r.db.WithContext(ctx).
		Preload("Category").
		Preload("TourDates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		First(&t, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &t, nil
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	if err := translate(r.db.WithContext(ctx).Create(t).Error); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Preload("Category").First(t, t.ID).Error)
}

func (r *TourRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Tour, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Tour{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var t domain.Tour
	if err := r.db.WithContext(ctx).Preload("Category").First(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TourRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Tour{}, id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TourRepository) CountByStatus(ctx context.Context, status domain.TourStatus) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&domain.Tour{}).Where("status = ?", status).Count(&n)
	return n, translate(tx.Error)
}
