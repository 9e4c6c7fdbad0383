package tour

import (
	"context"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

// TourRepository defines the data access the tour module needs.
type TourRepository interface {
	List(ctx context.Context, f repository.TourFilter) ([]domain.Tour, error)
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	Create(ctx context.Context, t *domain.Tour) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Tour, error)
	Delete(ctx context.Context, id int64) error
}

// TourDateRepository covers date creation on behalf of a tour.
type TourDateRepository interface {
	Create(ctx context.Context, d *domain.TourDate) error
}
