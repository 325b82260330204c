package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"repnowait/config"
	"repnowait/infras/kafka"
	kafkaMocks "repnowait/infras/kafka/mocks"
	otelMocks "repnowait/infras/otel/mocks"
	"repnowait/internal/domains/booking/event"
	"repnowait/internal/domains/booking/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPublisher(t *testing.T) (*kafkaMocks.MockClient, event.Publisher) {
	t.Helper()

	client := kafkaMocks.NewMockClient(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.Kafka.Topic.Booking = "repnowait.bookings"

	return client, event.New(client, cfg, otelMocks.NewOtel())
}

func TestPublish_SendsKeyedEvent(t *testing.T) {
	client, publisher := newPublisher(t)

	var sent kafka.Message

	client.EXPECT().
		SendMessages(gomock.Any(), "repnowait.bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			sent = messages[0]

			return nil
		})

	publisher.Publish(context.Background(), event.TypeCompleted, dto.BookingResponse{ID: 7, EquipmentID: 3, Done: true})
	require.NoError(t, publisher.Wait(context.Background()))

	assert.Equal(t, "7", sent.Key)
	assert.Equal(t, map[string]string{"event_type": event.TypeCompleted}, sent.Headers)

	evt, ok := sent.Value.(event.Event)
	require.True(t, ok)
	assert.Equal(t, event.TypeCompleted, evt.Type)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, 7, evt.Booking.ID)
}

func TestWait_BlocksUntilPendingSendsFinish(t *testing.T) {
	client, publisher := newPublisher(t)

	release := make(chan struct{})
	finished := make(chan struct{})

	client.EXPECT().
		SendMessages(gomock.Any(), "repnowait.bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
			<-release
			close(finished)

			return nil
		})

	publisher.Publish(context.Background(), event.TypeCreated, dto.BookingResponse{ID: 1, EquipmentID: 3})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, publisher.Wait(ctx), context.DeadlineExceeded)

	close(release)

	require.NoError(t, publisher.Wait(context.Background()))

	select {
	case <-finished:
	default:
		t.Fatal("Wait returned before the pending send finished")
	}
}

func TestPublish_FailureIsNotReturned(t *testing.T) {
	client, publisher := newPublisher(t)

	client.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("kafka: leader not available"))

	publisher.Publish(context.Background(), event.TypeCancelled, dto.BookingResponse{ID: 2})

	assert.NoError(t, publisher.Wait(context.Background()))
}

func TestNewEvent(t *testing.T) {
	evt := event.NewEvent(event.TypeCreated, dto.BookingResponse{ID: 4, EquipmentID: 3, TimeSlotID: 1, UserID: 1})

	_, err := time.Parse(time.RFC3339, evt.OccurredAt)
	require.NoError(t, err)

	body, err := json.Marshal(evt)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"booking.created"`)
}
