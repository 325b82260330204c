package dto_test

import (
	"repnowait/internal/domains/booking/model"
	"repnowait/internal/domains/booking/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	userID := 5

	tests := []struct {
		name string
		req  dto.CreateBookingRequest
		want model.Booking
	}{
		{
			name: "explicit user",
			req:  dto.CreateBookingRequest{EquipmentID: 1, TimeSlotID: 1, UserID: &userID},
			want: model.Booking{EquipmentID: 1, TimeSlotID: 1, UserID: 5},
		},
		{
			name: "default user",
			req:  dto.CreateBookingRequest{EquipmentID: 3, TimeSlotID: 2},
			want: model.Booking{EquipmentID: 3, TimeSlotID: 2, UserID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.ToModel(1))
		})
	}
}

func TestFromModels(t *testing.T) {
	res := dto.FromModels([]model.Booking{{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5, Done: true}})

	assert.Equal(t, []dto.BookingResponse{{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5, Done: true}}, res)
	assert.NotNil(t, dto.FromModels(nil))
}

func TestBooking_Active(t *testing.T) {
	assert.True(t, model.Booking{ID: 1}.Active())
	assert.False(t, model.Booking{ID: 1, Done: true}.Active())
	assert.False(t, model.Booking{}.Active())
}
