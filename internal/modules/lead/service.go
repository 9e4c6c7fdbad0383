package lead

import (
	"context"
	"errors"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type Service struct {
	leads     LeadRepository
	customers CustomerStore
	bookings  BookingCreator
}

func NewService(leads LeadRepository, customers CustomerStore, bookings BookingCreator) *Service {
	return &Service{leads: leads, customers: customers, bookings: bookings}
}

func (s *Service) List(ctx context.Context, f repository.LeadFilter) ([]domain.Lead, error) {
	return s.leads.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	l, err := s.leads.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLeadNotFound
	}
	return l, err
}

func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	l := &domain.Lead{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
		Status:  domain.LeadOpen,
		TourID:  req.TourID,
	}
	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateLeadRequest) (*domain.Lead, error) {
	updates := map[string]any{}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.AssignedTo.Set {
		updates["assigned_to"] = req.AssignedTo.Value
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}

	l, err := s.leads.Update(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLeadNotFound
	}
	return l, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.leads.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLeadNotFound
	}
	return err
}

// Convert turns a lead into a booking: the customer is found or created
// by the lead's phone, the booking is priced at the current rate, and
// the lead is closed regardless of its previous status. The steps run
// without a shared transaction, so a failure after the customer is
// created can leave it without a booking.
func (s *Service) Convert(ctx context.Context, id int64, req ConvertRequest) (*ConvertResult, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cust, err := s.customers.FindOrCreate(ctx, l.Name, l.Phone, l.Email, "")
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.CreateForCustomer(ctx, cust.ID, req.TourDateID, req.People, req.Note)
	if err != nil {
		return nil, err
	}

	if err := s.leads.UpdateStatus(ctx, id, domain.LeadClosed); err != nil {
		return nil, err
	}
	return &ConvertResult{Booking: b, BookingID: b.ID}, nil
}
