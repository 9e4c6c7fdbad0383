package domain

import "time"

type TourStatus string

const (
	TourDraft     TourStatus = "DRAFT"
	TourPublished TourStatus = "PUBLISHED"
)

func (s TourStatus) Valid() bool {
	switch s {
	case TourDraft, TourPublished:
		return true
	}
	return false
}

type Tour struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" validate:"required"`
	Slug         string     `json:"slug" gorm:"uniqueIndex" validate:"required"`
	Type         string     `json:"type" validate:"required"`
	Duration     int        `json:"duration" validate:"required,gte=1"`
	Difficulty   string     `json:"difficulty" validate:"required"`
	BasePrice    int64      `json:"basePrice" validate:"required,gte=0"`
	Status       TourStatus `json:"status" gorm:"default:DRAFT"`
	Cover        string     `json:"cover,omitempty"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	Gallery      StringList `json:"gallery,omitempty" gorm:"type:text"`
	Inclusions   StringList `json:"inclusions,omitempty" gorm:"type:text"`
	Exclusions   StringList `json:"exclusions,omitempty" gorm:"type:text"`
	MeetingPoint string     `json:"meetingPoint,omitempty"`
	CategoryID   int64      `json:"categoryId" validate:"required"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Category  *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	TourDates []TourDate `json:"tourDates,omitempty" gorm:"foreignKey:TourID"`
}
