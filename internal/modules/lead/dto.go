package lead

import (
	"encoding/json"

	"tourcrm/internal/domain"
)

type CreateLeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message"`
	TourID  *int64 `json:"tourId"`
}

// NullableID is a nullable int64 that remembers whether the key was
// present in the body, so an explicit null (unassign) can be told
// apart from an absent field. A plain pointer loses that distinction
// because json decodes null as a nil pointer.
type NullableID struct {
	Set   bool
	Value *int64
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	return json.Unmarshal(data, &n.Value)
}

type UpdateLeadRequest struct {
	Status     *domain.LeadStatus `json:"status"`
	AssignedTo NullableID         `json:"assignedTo"`
	Message    *string            `json:"message"`
}

type ConvertRequest struct {
	TourDateID int64  `json:"tourDateId" binding:"required"`
	People     int    `json:"people" binding:"required,gte=1"`
	Note       string `json:"note"`
}

// ConvertResult wraps the booking a lead was converted into.
type ConvertResult struct {
	Booking   *domain.Booking `json:"booking"`
	BookingID int64           `json:"bookingId"`
}
