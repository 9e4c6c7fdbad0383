package lead

import (
	"context"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type LeadRepository interface {
	List(ctx context.Context, f repository.LeadFilter) ([]domain.Lead, error)
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	Create(ctx context.Context, l *domain.Lead) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Lead, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
}

// CustomerStore deduplicates customers by phone.
type CustomerStore interface {
	FindOrCreate(ctx context.Context, fullName, phone, email, telegram string) (*domain.Customer, error)
}

// BookingCreator prices and persists a booking for a known customer.
type BookingCreator interface {
	CreateForCustomer(ctx context.Context, customerID, tourDateID int64, people int, note string) (*domain.Booking, error)
}
