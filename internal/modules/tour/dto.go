package tour

import (
	"time"

	"tourcrm/internal/domain"
)

type CreateTourRequest struct {
	Title        string   `json:"title" binding:"required" validate:"required"`
	Slug         string   `json:"slug" binding:"required" validate:"required"`
	Type         string   `json:"type" binding:"required" validate:"required"`
	Duration     int      `json:"duration" binding:"required,gte=1" validate:"required,gte=1"`
	Difficulty   string   `json:"difficulty" binding:"required" validate:"required"`
	BasePrice    int64    `json:"basePrice" binding:"required,gte=0" validate:"required,gte=0"`
	CategoryID   int64    `json:"categoryId" binding:"required" validate:"required"`
	Cover        string   `json:"cover"`
	Description  string   `json:"description"`
	Inclusions   []string `json:"inclusions"`
	Exclusions   []string `json:"exclusions"`
	MeetingPoint string   `json:"meetingPoint"`
}

type UpdateTourRequest struct {
	Title        *string  `json:"title"`
	Slug         *string  `json:"slug"`
	Type         *string  `json:"type"`
	Duration     *int     `json:"duration" binding:"omitempty,gte=1"`
	Difficulty   *string  `json:"difficulty"`
	BasePrice    *int64   `json:"basePrice" binding:"omitempty,gte=0"`
	CategoryID   *int64   `json:"categoryId"`
	Cover        *string  `json:"cover"`
	Description  *string  `json:"description"`
	Inclusions   []string `json:"inclusions"`
	Exclusions   []string `json:"exclusions"`
	MeetingPoint *string  `json:"meetingPoint"`
}

type UpdateStatusRequest struct {
	Status domain.TourStatus `json:"status" binding:"required"`
}

type UpdateGalleryRequest struct {
	Gallery []string `json:"gallery" binding:"required"`
}

type AddDateRequest struct {
	Date          time.Time `json:"date" binding:"required"`
	MaxGroupSize  int       `json:"maxGroupSize" binding:"required,gte=1"`
	PriceOverride *int64    `json:"priceOverride" binding:"omitempty,gte=0"`
}
