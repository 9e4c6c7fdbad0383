package booking

import (
	"context"
	"errors"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type Service struct {
	bookings  BookingRepository
	tourDates TourDateReader
	customers CustomerStore
	events    EventSink
}

func NewService(bookings BookingRepository, tourDates TourDateReader, customers CustomerStore, events EventSink) *Service {
	return &Service{bookings: bookings, tourDates: tourDates, customers: customers, events: events}
}

func (s *Service) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// CalculatePrice resolves the effective unit price for a departure and
// multiplies it by the party size. The unit price is the date's override
// when set, otherwise the tour's base price.
func (s *Service) CalculatePrice(ctx context.Context, tourDateID int64, people int) (Quote, error) {
	d, err := s.tourDates.GetWithTour(ctx, tourDateID)
	if errors.Is(err, repository.ErrNotFound) {
		return Quote{}, ErrTourDateNotFound
	}
	if err != nil {
		return Quote{}, err
	}
	unit := d.UnitPrice()
	return Quote{UnitPrice: unit, TotalPrice: unit * int64(people)}, nil
}

// Create finds or creates the customer by phone, prices the booking at
// the current rate, and persists it. The price is frozen on the row and
// does not follow later tour or date price changes.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	cust, err := s.customers.FindOrCreate(ctx, req.Customer.FullName, req.Customer.Phone, req.Customer.Email, req.Customer.Telegram)
	if err != nil {
		return nil, err
	}
	return s.CreateForCustomer(ctx, cust.ID, req.TourDateID, req.People, req.Note)
}

// CreateForCustomer prices and persists a booking for an already
// resolved customer. Lead conversion calls this directly.
func (s *Service) CreateForCustomer(ctx context.Context, customerID, tourDateID int64, people int, note string) (*domain.Booking, error) {
	quote, err := s.CalculatePrice(ctx, tourDateID, people)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		TourDateID: tourDateID,
		CustomerID: customerID,
		People:     people,
		TotalPrice: quote.TotalPrice,
		Status:     domain.BookingNew,
		Note:       note,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.events.BookingCreated(b)
	return b, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.Update(ctx, id, map[string]any{"status": status})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	s.events.BookingStatusChanged(b)
	return b, nil
}

// Update changes the party size or note. A people change reprices the
// booking at the current effective unit price, so an edited booking can
// diverge from untouched ones made at an older rate.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	updates := map[string]any{}
	if req.People != nil {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		quote, err := s.CalculatePrice(ctx, current.TourDateID, *req.People)
		if err != nil {
			return nil, err
		}
		updates["people"] = *req.People
		updates["total_price"] = quote.TotalPrice
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}

	b, err := s.bookings.Update(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}
