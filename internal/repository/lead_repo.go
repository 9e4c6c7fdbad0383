package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"tourcrm/internal/domain"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// LeadFilter narrows List results. Every field is optional.
type LeadFilter struct {
	// Status filters by exact lead status.
	Status *domain.LeadStatus
	// AssignedTo filters by assignee user id.
	AssignedTo *int64
	// Q matches name, phone or email, case-insensitive substring.
	Q string
}

func (r *LeadRepository) List(ctx context.Context, f LeadFilter) ([]domain.Lead, error) {
	q := r.db.WithContext(ctx).Model(&domain.Lead{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *f.AssignedTo)
	}
	if f.Q != "" {
		pattern := "%" + strings.ToLower(f.Q) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var leads []domain.Lead
	tx := q.
		Preload("Tour").
		Preload("Assigned").
		Order("created_at DESC").
		Find(&leads)
	return leads, translate(tx.Error)
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var l domain.Lead
	tx := r.db.WithContext(ctx).
		Preload("Tour").
		Preload("Assigned").
		First(&l, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &l, nil
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	if err := translate(r.db.WithContext(ctx).Create(l).Error); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Preload("Tour").First(l, l.ID).Error)
}

func (r *LeadRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Lead, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Lead{}, id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	tx := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByPhone returns leads sharing a phone number. There is no foreign key
// between customers and leads; the phone is a soft join.
func (r *LeadRepository) ListByPhone(ctx context.Context, phone string) ([]domain.Lead, error) {
	var leads []domain.Lead
	tx := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Preload("Tour").
		Preload("Assigned").
		Order("created_at DESC").
		Find(&leads)
	return leads, translate(tx.Error)
}

func (r *LeadRepository) CountOpenSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Where("status = ? AND created_at >= ?", domain.LeadOpen, since).
		Count(&n)
	return n, translate(tx.Error)
}
