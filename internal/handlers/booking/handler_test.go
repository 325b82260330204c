package booking_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	otelMocks "repnowait/infras/otel/mocks"
	"repnowait/internal/domains/booking/mocks"
	"repnowait/internal/domains/booking/model/dto"
	"repnowait/internal/handlers/booking"
	"repnowait/shared/constant"
	"repnowait/shared/failure"
	"repnowait/transport/http/response"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockBookingService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockBookingService(gomock.NewController(t))

	router := chi.NewRouter()
	handler := booking.New(svc, otelMocks.NewOtel())
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var msg response.Message
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &msg))

	return msg.Message
}

func TestGetBookings(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().ListActive(gomock.Any()).Return([]dto.BookingResponse{
		{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 1},
	}, nil)

	recorder := serve(router, http.MethodGet, "/bookings", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[{"id":1,"equipment_id":1,"time_slot_id":1,"user_id":1,"done":false}]`, recorder.Body.String())
}

func TestGetBookings_Empty(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().ListActive(gomock.Any()).Return([]dto.BookingResponse{}, nil)

	recorder := serve(router, http.MethodGet, "/bookings", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestGetBookings_StoreError(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("pq: connection refused"))

	recorder := serve(router, http.MethodGet, "/bookings", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, constant.ResponseErrorInternal, decodeMessage(t, recorder))
}

func TestCreateBooking(t *testing.T) {
	svc, router := setup(t)
	userID := 5

	svc.EXPECT().
		Create(gomock.Any(), dto.CreateBookingRequest{EquipmentID: 1, TimeSlotID: 2, UserID: &userID}).
		Return(dto.BookingResponse{ID: 9, EquipmentID: 1, TimeSlotID: 2, UserID: 5}, nil)

	recorder := serve(router, http.MethodPost, "/bookings", `{"equipment_id":1,"time_slot_id":2,"user_id":5}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"id":9,"equipment_id":1,"time_slot_id":2,"user_id":5,"done":false}`, recorder.Body.String())
}

func TestCreateBooking_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing equipment", body: `{"time_slot_id":2}`},
		{name: "missing time slot", body: `{"equipment_id":1}`},
		{name: "non positive user", body: `{"equipment_id":1,"time_slot_id":2,"user_id":0}`},
		{name: "string id", body: `{"equipment_id":"1","time_slot_id":2}`},
		{name: "malformed", body: `{"equipment_id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			svc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			recorder := serve(router, http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestCreateBooking_StoreError(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, errors.New("violates foreign key constraint"))

	recorder := serve(router, http.MethodPost, "/bookings", `{"equipment_id":100,"time_slot_id":2}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, constant.ResponseErrorInternal, decodeMessage(t, recorder))
}

func TestCompleteBooking(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Complete(gomock.Any(), 3).Return(dto.BookingResponse{ID: 3, EquipmentID: 1, TimeSlotID: 1, UserID: 1, Done: true}, nil)

	recorder := serve(router, http.MethodPut, "/bookings/3", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":3,"equipment_id":1,"time_slot_id":1,"user_id":1,"done":true}`, recorder.Body.String())
}

func TestCompleteBooking_NotFound(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Complete(gomock.Any(), 3).Return(dto.BookingResponse{}, failure.NotFound(constant.MessageBookingNotFoundOrDone))

	recorder := serve(router, http.MethodPut, "/bookings/3", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, constant.MessageBookingNotFoundOrDone, decodeMessage(t, recorder))
}

func TestCancelBooking(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Cancel(gomock.Any(), 4).Return(nil)

	recorder := serve(router, http.MethodDelete, "/bookings/4", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Booking cancelled"}`, recorder.Body.String())
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Cancel(gomock.Any(), 4).Return(fmt.Errorf("transaction failed: %w", failure.NotFound(constant.MessageBookingNotFound)))

	recorder := serve(router, http.MethodDelete, "/bookings/4", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, constant.MessageBookingNotFound, decodeMessage(t, recorder))
}

func TestInvalidPathID(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		for _, id := range []string{"abc", "0", "-2", "2147483648"} {
			t.Run(method+" "+id, func(t *testing.T) {
				_, router := setup(t)

				recorder := serve(router, method, "/bookings/"+id, "")

				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Equal(t, failure.InvalidIDParam.Message, decodeMessage(t, recorder))
			})
		}
	}
}

func TestServiceErrorsAreNotLoggedAgain(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	svc, router := setup(t)

	svc.EXPECT().Complete(gomock.Any(), 3).Return(dto.BookingResponse{}, errors.New("failed to complete booking: connection reset"))
	svc.EXPECT().Cancel(gomock.Any(), 4).Return(errors.New("failed to cancel booking: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, serve(router, http.MethodPut, "/bookings/3", "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(router, http.MethodDelete, "/bookings/4", "").Code)
	assert.Empty(t, buf.String())
}
