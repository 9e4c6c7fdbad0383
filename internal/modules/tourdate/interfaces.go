package tourdate

import (
	"context"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

// TourDateRepository defines the data access the tour date module needs.
type TourDateRepository interface {
	List(ctx context.Context, f repository.TourDateFilter) ([]domain.TourDate, error)
	GetByID(ctx context.Context, id int64) (*domain.TourDate, error)
	Create(ctx context.Context, d *domain.TourDate) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.TourDate, error)
	Delete(ctx context.Context, id int64) error
}
