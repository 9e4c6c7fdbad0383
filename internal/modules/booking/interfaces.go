package booking

import (
	"context"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type BookingRepository interface {
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Booking, error)
}

type TourDateReader interface {
	GetWithTour(ctx context.Context, id int64) (*domain.TourDate, error)
}

// CustomerStore deduplicates customers by phone.
type CustomerStore interface {
	FindOrCreate(ctx context.Context, fullName, phone, email, telegram string) (*domain.Customer, error)
}

// EventSink receives booking lifecycle notifications. Implementations
// must not block.
type EventSink interface {
	BookingCreated(b *domain.Booking)
	BookingStatusChanged(b *domain.Booking)
}
