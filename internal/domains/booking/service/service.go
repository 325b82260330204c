package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"repnowait/config"
	"repnowait/infras/otel"
	"repnowait/internal/domains/booking/event"
	"repnowait/internal/domains/booking/model"
	"repnowait/internal/domains/booking/model/dto"
	"repnowait/internal/domains/booking/repository"
	occupancy "repnowait/internal/domains/occupancy/service"
	"repnowait/shared"
	"repnowait/shared/constant"
	gDto "repnowait/shared/dto"
	"repnowait/shared/failure"
	"repnowait/shared/metrics"
	"repnowait/shared/transaction"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Booking owns the booking lifecycle. Every transition that changes occupancy is committed
// together with its ledger adjustment.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Complete(ctx context.Context, id int) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int) error
	ListActive(ctx context.Context) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	ledger     occupancy.Ledger
	transactor transaction.Transactor
	publisher  event.Publisher
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	ledger occupancy.Ledger,
	transactor transaction.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		ledger:     ledger,
		transactor: transactor,
		publisher:  publisher,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var created model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		stored, err := s.repo.InsertTx(ctx, sqltx, req.ToModel(s.cfg.App.DefaultUserID))
		if err != nil {
			return err
		}

		created = stored

		return s.ledger.OnBookingCreated(ctx, sqltx, stored.EquipmentID)
	})
	if err != nil {
		msg := "failed to create booking"
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			msg = "booking references unknown equipment or time slot"
		}

		log.Error().Err(err).
			Int("equipment_id", req.EquipmentID).
			Int("time_slot_id", req.TimeSlotID).
			Msg(msg)

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(created)
	scope.SetAttribute("booking.id", res.ID)

	s.committed(ctx, metrics.TransitionCreated, event.TypeCreated, res)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.id", id)

	var completed model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		updated, err := s.repo.CompleteTx(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if updated.ID == 0 {
			return failure.NotFound(constant.MessageBookingNotFoundOrDone)
		}

		completed = updated

		return s.ledger.OnBookingReleased(ctx, sqltx, updated.EquipmentID)
	})
	if err != nil {
		if failure.IsNotFound(err) {
			log.Info().Int("booking_id", id).Msg("no active booking to complete")

			return res, err
		}

		log.Error().Err(err).Int("booking_id", id).Msg("failed to complete booking")

		return res, fmt.Errorf("failed to complete booking: %w", err)
	}

	res.FromModel(completed)

	s.committed(ctx, metrics.TransitionCompleted, event.TypeCompleted, res)

	return res, nil
}

// Cancel deletes the booking whatever its state. Occupancy is released only when the booking was
// still active, so cancelling a completed booking never decrements its zone twice.
func (s *serviceImpl) Cancel(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.id", id)

	var deleted model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		removed, err := s.repo.DeleteTx(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if removed.ID == 0 {
			return failure.NotFound(constant.MessageBookingNotFound)
		}

		deleted = removed

		if !removed.Active() {
			return nil
		}

		return s.ledger.OnBookingReleased(ctx, sqltx, removed.EquipmentID)
	})
	if err != nil {
		if failure.IsNotFound(err) {
			log.Info().Int("booking_id", id).Msg("no booking to cancel")

			return err
		}

		log.Error().Err(err).Int("booking_id", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	var res dto.BookingResponse
	res.FromModel(deleted)

	s.committed(ctx, metrics.TransitionCancelled, event.TypeCancelled, res)

	return nil
}

func (s *serviceImpl) ListActive(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(gDto.Filter{
		Field:    model.FieldDone,
		Value:    false,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	bookings, err := s.repo.GetAll(ctx, filter, constant.OrderByID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active bookings")

		return nil, fmt.Errorf("failed to list active bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) committed(ctx context.Context, transition, eventType string, booking dto.BookingResponse) {
	metrics.RecordBookingTransition(transition)

	log.Info().
		Str("transition", transition).
		Int("booking_id", booking.ID).
		Int("equipment_id", booking.EquipmentID).
		Msg("booking transition committed")

	s.publisher.Publish(ctx, eventType, booking)
}
