package customer

import (
	"time"

	"tourcrm/internal/domain"
)

type CreateCustomerRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Telegram string `json:"telegram"`
}

type UpdateCustomerRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Telegram *string `json:"telegram"`
}

// CustomerDetail is a customer plus the leads that share its phone number.
// Leads carry no customer foreign key, so the join happens here.
type CustomerDetail struct {
	domain.Customer
	Leads []domain.Lead `json:"leads"`
}

// TimelineEntry is one interaction in a customer's history, either a
// booking or a lead, ordered newest first.
type TimelineEntry struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	Data      any       `json:"data"`
}
