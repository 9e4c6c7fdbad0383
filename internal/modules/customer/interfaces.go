package customer

import (
	"context"

	"tourcrm/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context, q string) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// LeadReader joins leads onto a customer by phone number.
type LeadReader interface {
	ListByPhone(ctx context.Context, phone string) ([]domain.Lead, error)
}

type BookingReader interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
}
