package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"repnowait/config"
	otelMocks "repnowait/infras/otel/mocks"
	"repnowait/internal/domains/booking/event"
	"repnowait/internal/domains/booking/mocks"
	"repnowait/internal/domains/booking/model"
	"repnowait/internal/domains/booking/model/dto"
	"repnowait/internal/domains/booking/service"
	occupancyMocks "repnowait/internal/domains/occupancy/mocks"
	"repnowait/shared/constant"
	"repnowait/shared/failure"
	"repnowait/shared/transaction"
	txMocks "repnowait/shared/transaction/mocks"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo       *mocks.MockBooking
	ledger     *occupancyMocks.MockLedger
	transactor *txMocks.MockTransactor
	publisher  *mocks.MockPublisher
	service    service.Booking
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.DefaultUserID = 1

	f := fixture{
		repo:       mocks.NewMockBooking(ctrl),
		ledger:     occupancyMocks.NewMockLedger(ctrl),
		transactor: txMocks.NewMockTransactor(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
	}

	f.service = service.New(f.repo, f.ledger, f.transactor, f.publisher, cfg, otelMocks.NewOtel())

	return f
}

func (f fixture) expectTx() {
	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn transaction.Func) error {
		return fn(ctx, nil)
	})
}

func TestCreate(t *testing.T) {
	f := setup(t)
	userID := 5

	f.expectTx()
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), model.Booking{EquipmentID: 1, TimeSlotID: 1, UserID: 5}).
		Return(model.Booking{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5}, nil)
	f.ledger.EXPECT().OnBookingCreated(gomock.Any(), gomock.Any(), 1).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeCreated, dto.BookingResponse{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5})

	res, err := f.service.Create(context.Background(), dto.CreateBookingRequest{EquipmentID: 1, TimeSlotID: 1, UserID: &userID})

	require.NoError(t, err)
	assert.Equal(t, dto.BookingResponse{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5, Done: false}, res)
}

func TestCreate_DefaultUser(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), model.Booking{EquipmentID: 2, TimeSlotID: 3, UserID: 1}).
		Return(model.Booking{ID: 7, EquipmentID: 2, TimeSlotID: 3, UserID: 1}, nil)
	f.ledger.EXPECT().OnBookingCreated(gomock.Any(), gomock.Any(), 2).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeCreated, gomock.Any())

	res, err := f.service.Create(context.Background(), dto.CreateBookingRequest{EquipmentID: 2, TimeSlotID: 3})

	require.NoError(t, err)
	assert.Equal(t, 1, res.UserID)
}

func TestCreate_StoreFailure(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.Booking{}, fmt.Errorf("failed to insert data: %w", &pq.Error{
			Code:    constant.PqErrorCodeFkViolation,
			Message: `insert or update on table "bookings" violates foreign key constraint`,
		}))

	_, err := f.service.Create(context.Background(), dto.CreateBookingRequest{EquipmentID: 999, TimeSlotID: 1})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestCreate_LedgerFailure(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{ID: 3, EquipmentID: 5}, nil)
	f.ledger.EXPECT().OnBookingCreated(gomock.Any(), gomock.Any(), 5).Return(errors.New("deadlock detected"))

	_, err := f.service.Create(context.Background(), dto.CreateBookingRequest{EquipmentID: 5, TimeSlotID: 1})

	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().CompleteTx(gomock.Any(), gomock.Any(), 1).Return(model.Booking{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5, Done: true}, nil)
	f.ledger.EXPECT().OnBookingReleased(gomock.Any(), gomock.Any(), 1).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeCompleted, gomock.Any())

	res, err := f.service.Complete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, res.Done)
}

func TestComplete_NotActive(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().CompleteTx(gomock.Any(), gomock.Any(), 42).Return(model.Booking{}, nil)

	_, err := f.service.Complete(context.Background(), 42)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, constant.MessageBookingNotFoundOrDone, failure.GetMessage(err))
}

func TestCancel_ActiveReleasesZone(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), 1).Return(model.Booking{ID: 1, EquipmentID: 11, TimeSlotID: 1, UserID: 1}, nil)
	f.ledger.EXPECT().OnBookingReleased(gomock.Any(), gomock.Any(), 11).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeCancelled, gomock.Any())

	require.NoError(t, f.service.Cancel(context.Background(), 1))
}

func TestCancel_DoneDoesNotReleaseTwice(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), 1).Return(model.Booking{ID: 1, EquipmentID: 11, Done: true}, nil)
	f.ledger.EXPECT().OnBookingReleased(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeCancelled, gomock.Any())

	require.NoError(t, f.service.Cancel(context.Background(), 1))
}

func TestCancel_Unknown(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), 8).Return(model.Booking{}, nil)

	err := f.service.Cancel(context.Background(), 8)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, constant.MessageBookingNotFound, failure.GetMessage(err))
}

func TestCancel_StoreFailure(t *testing.T) {
	f := setup(t)

	f.expectTx()
	f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), 8).Return(model.Booking{}, errors.New("connection refused"))

	err := f.service.Cancel(context.Background(), 8)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestListActive(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), constant.OrderByID).Return([]model.Booking{
		{ID: 1, EquipmentID: 1, TimeSlotID: 1, UserID: 5},
		{ID: 2, EquipmentID: 11, TimeSlotID: 2, UserID: 1},
	}, nil)

	res, err := f.service.ListActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, 11, res[1].EquipmentID)
}

func TestListActive_Empty(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), constant.OrderByID).Return([]model.Booking{}, nil)

	res, err := f.service.ListActive(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestListActive_Error(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), constant.OrderByID).Return(nil, errors.New("timeout"))

	_, err := f.service.ListActive(context.Background())

	assert.Error(t, err)
}
