package domain

import "time"

type LeadStatus string

const (
	LeadOpen       LeadStatus = "OPEN"
	LeadInProgress LeadStatus = "IN_PROGRESS"
	LeadClosed     LeadStatus = "CLOSED"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadOpen, LeadInProgress, LeadClosed:
		return true
	}
	return false
}

type Lead struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" validate:"required"`
	Phone      string     `json:"phone" validate:"required"`
	Email      string     `json:"email,omitempty"`
	Message    string     `json:"message,omitempty" gorm:"type:text"`
	Status     LeadStatus `json:"status" gorm:"default:OPEN"`
	TourID     *int64     `json:"tourId,omitempty"`
	AssignedTo *int64     `json:"assignedTo,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Tour     *Tour `json:"tour,omitempty" gorm:"foreignKey:TourID"`
	Assigned *User `json:"assigned,omitempty" gorm:"foreignKey:AssignedTo"`
}

func (l *Lead) IsClosed() bool { return l.Status == LeadClosed }
