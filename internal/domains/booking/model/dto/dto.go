package dto

import "repnowait/internal/domains/booking/model"

type CreateBookingRequest struct {
	EquipmentID int  `json:"equipment_id" validate:"required,gt=0"`
	TimeSlotID  int  `json:"time_slot_id" validate:"required,gt=0"`
	UserID      *int `json:"user_id"      validate:"omitempty,gt=0"`
}

// ToModel builds an active booking, using defaultUserID when the request names no user.
func (c *CreateBookingRequest) ToModel(defaultUserID int) model.Booking {
	userID := defaultUserID
	if c.UserID != nil {
		userID = *c.UserID
	}

	return model.Booking{
		EquipmentID: c.EquipmentID,
		TimeSlotID:  c.TimeSlotID,
		UserID:      userID,
		Done:        false,
	}
}

type BookingResponse struct {
	ID          int  `json:"id"`
	EquipmentID int  `json:"equipment_id"`
	TimeSlotID  int  `json:"time_slot_id"`
	UserID      int  `json:"user_id"`
	Done        bool `json:"done"`
}

func (b *BookingResponse) FromModel(m model.Booking) {
	b.ID = m.ID
	b.EquipmentID = m.EquipmentID
	b.TimeSlotID = m.TimeSlotID
	b.UserID = m.UserID
	b.Done = m.Done
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(models))

	for _, m := range models {
		var booking BookingResponse

		booking.FromModel(m)
		res = append(res, booking)
	}

	return res
}
