package tourdate

import (
	"context"
	"errors"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type Service struct {
	dates TourDateRepository
}

func NewService(dates TourDateRepository) *Service {
	return &Service{dates: dates}
}

func (s *Service) List(ctx context.Context, f repository.TourDateFilter) ([]domain.TourDate, error) {
	return s.dates.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.TourDate, error) {
	d, err := s.dates.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTourDateNotFound
	}
	return d, err
}

func (s *Service) Create(ctx context.Context, req CreateTourDateRequest) (*domain.TourDate, error) {
	d := &domain.TourDate{
		TourID:        req.TourID,
		Date:          req.Date,
		MaxGroupSize:  req.MaxGroupSize,
		PriceOverride: req.PriceOverride,
	}
	if err := s.dates.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTourDateRequest) (*domain.TourDate, error) {
	updates := map[string]any{
		"date":           req.Date,
		"max_group_size": req.MaxGroupSize,
		"price_override": req.PriceOverride,
	}

	d, err := s.dates.Update(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTourDateNotFound
	}
	return d, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.dates.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTourDateNotFound
	}
	return err
}
