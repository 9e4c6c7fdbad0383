package user

import (
	"context"

	"tourcrm/internal/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
