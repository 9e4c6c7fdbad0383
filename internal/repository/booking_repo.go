package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"tourcrm/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingFilter narrows List results. Every field is optional.
type BookingFilter struct {
	// Status filters by exact booking status.
	Status *domain.BookingStatus
	// TourID filters bookings whose tour date belongs to the tour.
	TourID *int64
	// From/To bound the creation time, inclusive.
	From *time.Time
	To   *time.Time
	// Q matches the customer's name or phone, case-insensitive substring.
	Q string
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.TourID != nil {
		q = q.Where("tour_date_id IN (?)",
			r.db.Model(&domain.TourDate{}).Select("id").Where("tour_id = ?", *f.TourID))
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	if f.Q != "" {
		pattern := "%" + strings.ToLower(f.Q) + "%"
		q = q.Where("customer_id IN (?)",
			r.db.Model(&domain.Customer{}).Select("id").
				Where("LOWER(full_name) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern))
	}

	var bookings []domain.Booking
	tx := q.
		Preload("Customer").
		Preload("TourDate.Tour.Category").
		Order("created_at DESC").
		Find(&bookings)
	return bookings, translate(tx.Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("TourDate.Tour").
		First(&b, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := translate(r.db.WithContext(ctx).Create(b).Error); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).
		Preload("Customer").
		Preload("TourDate.Tour").
		First(b, b.ID).Error)
}

func (r *BookingRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Preload("TourDate.Tour.Category").
		Order("created_at DESC").
		Find(&bookings)
	return bookings, translate(tx.Error)
}

// ListCreatedSince returns bookings created at or after the given instant.
// Dashboard aggregation reduces these rows in memory.
func (r *BookingRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Preload("TourDate.Tour").
		Find(&bookings)
	return bookings, translate(tx.Error)
}
