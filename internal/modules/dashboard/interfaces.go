package dashboard

import (
	"context"
	"time"

	"tourcrm/internal/domain"
)

type BookingReader interface {
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Booking, error)
}

type TourCounter interface {
	CountByStatus(ctx context.Context, status domain.TourStatus) (int64, error)
}

type LeadCounter interface {
	CountOpenSince(ctx context.Context, since time.Time) (int64, error)
}

type TourDateReader interface {
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]domain.TourDate, error)
}
