package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"repnowait/config"
	"repnowait/infras/kafka"
	"repnowait/infras/otel"
	"repnowait/internal/domains/booking/model/dto"
	"repnowait/shared/constant"
	"repnowait/shared/metrics"
	"repnowait/shared/timezone"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeCreated   = "booking.created"
	TypeCompleted = "booking.completed"
	TypeCancelled = "booking.cancelled"

	headerEventType = "event_type"
	publishTimeout  = 10 * time.Second
)

// Event is the payload written to the booking topic, keyed by booking id.
type Event struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	OccurredAt string              `json:"occurred_at"`
	Booking    dto.BookingResponse `json:"booking"`
}

type Publisher interface {
	// Publish sends the event in the background. Failures are logged and counted, never returned.
	Publish(ctx context.Context, eventType string, booking dto.BookingResponse)
	// Wait blocks until every pending publish has finished or ctx is done.
	Wait(ctx context.Context) error
}

type publisherImpl struct {
	client   kafka.Client
	topic    string
	otel     otel.Otel
	inflight sync.WaitGroup
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic.Booking,
		otel:   otel,
	}
}

// NewEvent stamps a booking change with a fresh id and the current time.
func NewEvent(eventType string, booking dto.BookingResponse) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Now().Format(constant.DateFormat),
		Booking:    booking,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType string, booking dto.BookingResponse) {
	evt := NewEvent(eventType, booking)

	p.inflight.Add(1)

	go func() {
		defer p.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Publish")
		defer scope.End()

		scope.SetAttribute("event.type", evt.Type)
		scope.SetAttribute("event.id", evt.ID)

		err := p.client.SendMessages(ctx, p.topic, kafka.Message{
			Key:     strconv.Itoa(booking.ID),
			Value:   evt,
			Headers: map[string]string{headerEventType: evt.Type},
		})

		metrics.RecordEventPublished(evt.Type, err)

		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("event", evt.Type).Int("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (p *publisherImpl) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		p.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("booking events still pending: %w", ctx.Err())
	}
}
