package customer

import (
	"context"
	"errors"
	"sort"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

// recentBookingsShown caps how many bookings ride along on each row of
// the customer list. Full history stays on the detail endpoint.
const recentBookingsShown = 5

type Service struct {
	customers CustomerRepository
	leads     LeadReader
	bookings  BookingReader
}

func NewService(customers CustomerRepository, leads LeadReader, bookings BookingReader) *Service {
	return &Service{customers: customers, leads: leads, bookings: bookings}
}

func (s *Service) List(ctx context.Context, q string) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if len(customers[i].Bookings) > recentBookingsShown {
			customers[i].Bookings = customers[i].Bookings[:recentBookingsShown]
		}
	}
	return customers, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*CustomerDetail, error) {
	c, err := s.customers.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	leads, err := s.leads.ListByPhone(ctx, c.Phone)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	return &CustomerDetail{Customer: *c, Leads: leads}, nil
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	c := &domain.Customer{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Telegram: req.Telegram,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Telegram != nil {
		updates["telegram"] = *req.Telegram
	}
	if len(updates) == 0 {
		c, err := s.customers.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return c, err
	}

	c, err := s.customers.Update(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return c, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.customers.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCustomerNotFound
	}
	return err
}

// Timeline merges a customer's bookings and phone-matched leads into a
// single history, newest first.
func (s *Service) Timeline(ctx context.Context, id int64) ([]TimelineEntry, error) {
	c, err := s.customers.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.ListByPhone(ctx, c.Phone)
	if err != nil {
		return nil, err
	}

	entries := make([]TimelineEntry, 0, len(bookings)+len(leads))
	for i := range bookings {
		entries = append(entries, TimelineEntry{Type: "booking", CreatedAt: bookings[i].CreatedAt, Data: bookings[i]})
	}
	for i := range leads {
		entries = append(entries, TimelineEntry{Type: "lead", CreatedAt: leads[i].CreatedAt, Data: leads[i]})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// FindOrCreate returns the customer with the given phone, creating one
// when none exists. An existing customer comes back unchanged, the
// extra fields only seed a fresh row. Booking creation goes through here.
func (s *Service) FindOrCreate(ctx context.Context, fullName, phone, email, telegram string) (*domain.Customer, error) {
	c, err := s.customers.GetByPhone(ctx, phone)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	c = &domain.Customer{FullName: fullName, Phone: phone, Email: email, Telegram: telegram}
	if err := s.customers.Create(ctx, c); err != nil {
		// Lost a race with a concurrent create; the row is there now.
		if errors.Is(err, repository.ErrDuplicate) {
			return s.customers.GetByPhone(ctx, phone)
		}
		return nil, err
	}
	return c, nil
}
