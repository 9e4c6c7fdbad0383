package tour

import (
	"context"
	"errors"

	"tourcrm/internal/domain"
	"tourcrm/internal/repository"
)

type Service struct {
	tours TourRepository
	dates TourDateRepository
}

func NewService(tours TourRepository, dates TourDateRepository) *Service {
	return &Service{tours: tours, dates: dates}
}

func (s *Service) List(ctx context.Context, f repository.TourFilter) ([]domain.Tour, error) {
	return s.tours.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	t, err := s.tours.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTourNotFound
	}
	return t, err
}

func (s *Service) Create(ctx context.Context, req CreateTourRequest) (*domain.Tour, error) {
	t := &domain.Tour{
		Title:        req.Title,
		Slug:         req.Slug,
		Type:         req.Type,
		Duration:     req.Duration,
		Difficulty:   req.Difficulty,
		BasePrice:    req.BasePrice,
		Status:       domain.TourDraft,
		Cover:        req.Cover,
		Description:  req.Description,
		Inclusions:   domain.StringList(req.Inclusions),
		Exclusions:   domain.StringList(req.Exclusions),
		MeetingPoint: req.MeetingPoint,
		CategoryID:   req.CategoryID,
	}
	if err := s.tours.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTourRequest) (*domain.Tour, error) {
	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.BasePrice != nil {
		updates["base_price"] = *req.BasePrice
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Cover != nil {
		updates["cover"] = *req.Cover
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Inclusions != nil {
		updates["inclusions"] = domain.StringList(req.Inclusions)
	}
	if req.Exclusions != nil {
		updates["exclusions"] = domain.StringList(req.Exclusions)
	}
	if req.MeetingPoint != nil {
		updates["meeting_point"] = *req.MeetingPoint
	}
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}

	t, err := s.tours.Update(ctx, id, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTourNotFound
	}
	return t, err
}

// UpdateStatus publishes or unpublishes a tour.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.TourStatus) (*domain.Tour, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	t, err := s.tours.Update(ctx, id, map[string]any{"status": status})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTourNotFound
	}
	return t, err
}

func (s *Service) UpdateGallery(ctx context.Context, id int64, gallery []string) (*domain.Tour, error) {
	t, err := s.tours.Update(ctx, id, map[string]any{"gallery": domain.StringList(gallery)})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTourNotFound
	}
	return t, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tours.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTourNotFound
	}
	return err
}

// AddDate schedules a new date for an existing tour.
func (s *Service) AddDate(ctx context.Context, tourID int64, req AddDateRequest) (*domain.TourDate, error) {
	if _, err := s.GetByID(ctx, tourID); err != nil {
		return nil, err
	}

	d := &domain.TourDate{
		TourID:        tourID,
		Date:          req.Date,
		MaxGroupSize:  req.MaxGroupSize,
		PriceOverride: req.PriceOverride,
	}
	if err := s.dates.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
