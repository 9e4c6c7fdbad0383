package category

import (
	"context"

	"tourcrm/internal/domain"
)

// CategoryRepository defines the data access the category module needs.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
