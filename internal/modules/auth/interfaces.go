package auth

import (
	"context"

	"tourcrm/internal/domain"
)

// UserRepository defines the user data access the auth flows need.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type jwtService interface {
	GenerateToken(userID int64, email, role string) (string, error)
}
