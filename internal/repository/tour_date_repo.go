package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tourcrm/internal/domain"
)

type TourDateRepository struct {
	db *gorm.DB
}

func NewTourDateRepository(db *gorm.DB) *TourDateRepository {
	return &TourDateRepository{db: db}
}

// TourDateFilter narrows List results. Every field is optional.
type TourDateFilter struct {
	// TourID filters by owning tour.
	TourID *int64
	// From/To bound the scheduled date, inclusive.
	From *time.Time
	To   *time.Time
}

func (r *TourDateRepository) List(ctx context.Context, f TourDateFilter) ([]domain.TourDate, error) {
	q := r.db.WithContext(ctx).Model(&domain.TourDate{})

	if f.TourID != nil {
		q = q.Where("tour_id = ?", *f.TourID)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}

	var dates []domain.TourDate
	tx := q.
		Preload("Tour.Category").
		Preload("Bookings").
		Order("date ASC").
		Find(&dates)
	return dates, translate(tx.Error)
}

func (r *TourDateRepository) GetByID(ctx context.Context, id int64) (*domain.TourDate, error) {
	var d domain.TourDate
	tx := r.db.WithContext(ctx).
		Preload("Tour.Category").
		Preload("Bookings.Customer").
		First(&d, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &d, nil
}

// GetWithTour loads a date with its parent tour only, enough to resolve the
// effective unit price.
func (r *TourDateRepository) GetWithTour(ctx context.Context, id int64) (*domain.TourDate, error) {
	var d domain.TourDate
	tx := r.db.WithContext(ctx).Preload("Tour").First(&d, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &d, nil
}

func (r *TourDateRepository) Create(ctx context.Context, d *domain.TourDate) error {
	if err := translate(r.db.WithContext(ctx).Create(d).Error); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Preload("Tour").First(d, d.ID).Error)
}

func (r *TourDateRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.TourDate, error) {
	tx := r.db.WithContext(ctx).Model(&domain.TourDate{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var d domain.TourDate
	if err := r.db.WithContext(ctx).Preload("Tour").First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *TourDateRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.TourDate{}, id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUpcoming returns the soonest dates at or after now, with their bookings.
func (r *TourDateRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]domain.TourDate, error) {
	var dates []domain.TourDate
	tx := r.db.WithContext(ctx).
		Where("date >= ?", now).
		Preload("Tour").
		Preload("Bookings").
		Order("date ASC").
		Limit(limit).
		Find(&dates)
	return dates, translate(tx.Error)
}
