package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"repnowait/infras/otel"
	"repnowait/internal/domains/occupancy/model"
	"repnowait/internal/domains/occupancy/model/dto"
	"repnowait/internal/domains/occupancy/repository"
	"repnowait/shared/constant"
	gDto "repnowait/shared/dto"
	"repnowait/shared/metrics"
	"repnowait/shared/transaction"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// ZoneResolver maps equipment to zones.
type ZoneResolver interface {
	ZoneFor(equipmentID int) (string, bool)
	Zones() []string
}

// Ledger keeps one counter of active bookings per zone. The tx-bound hooks must run in the
// same transaction as the booking change they account for.
type Ledger interface {
	OnBookingCreated(ctx context.Context, sqltx *sqlx.Tx, equipmentID int) error
	OnBookingReleased(ctx context.Context, sqltx *sqlx.Tx, equipmentID int) error
	Snapshot(ctx context.Context) ([]dto.ZoneCount, error)
	Reconcile(ctx context.Context) ([]dto.ReconcileChange, error)
	VerifyZones(ctx context.Context) ([]string, error)
}

type serviceImpl struct {
	repo       repository.ZoneOccupancy
	transactor transaction.Transactor
	zones      ZoneResolver
	otel       otel.Otel
}

func New(repo repository.ZoneOccupancy, transactor transaction.Transactor, zones ZoneResolver, otel otel.Otel) Ledger {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		zones:      zones,
		otel:       otel,
	}
}

func (s *serviceImpl) OnBookingCreated(ctx context.Context, sqltx *sqlx.Tx, equipmentID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.OnBookingCreated")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.adjust(ctx, sqltx, equipmentID, 1)
}

func (s *serviceImpl) OnBookingReleased(ctx context.Context, sqltx *sqlx.Tx, equipmentID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.OnBookingReleased")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.adjust(ctx, sqltx, equipmentID, -1)
}

func (s *serviceImpl) adjust(ctx context.Context, sqltx *sqlx.Tx, equipmentID, delta int) error {
	zone, ok := s.zones.ZoneFor(equipmentID)
	if !ok {
		log.Warn().Int("equipment_id", equipmentID).Int("delta", delta).Msg("equipment has no zone, ledger left unchanged")
		metrics.RecordLedgerUnmapped()

		return nil
	}

	matched, err := s.repo.AdjustTx(ctx, sqltx, zone, delta)
	if err != nil {
		log.Error().Err(err).Str("zone", zone).Int("delta", delta).Msg("failed to adjust zone counter")

		return fmt.Errorf("failed to adjust zone counter: %w", err)
	}

	if !matched {
		log.Warn().Str("zone", zone).Int("equipment_id", equipmentID).Msg("zone has no gym_map row, ledger left unchanged")
		metrics.RecordLedgerUnmapped()

		return nil
	}

	metrics.RecordLedgerAdjustment(zone, delta)

	return nil
}

func (s *serviceImpl) Snapshot(ctx context.Context) (res []dto.ZoneCount, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	zones, err := s.repo.GetAll(ctx, gDto.FilterGroup{}, constant.OrderByZoneID)
	if err != nil {
		log.Error().Err(err).Msg("failed to read zone counters")

		return nil, fmt.Errorf("failed to read zone counters: %w", err)
	}

	return dto.FromModels(zones), nil
}

// Reconcile rewrites every zone counter from the active bookings. Zone rows stay locked for the
// whole run so concurrent booking changes apply either before the count or after the rewrite.
func (s *serviceImpl) Reconcile(ctx context.Context) (changes []dto.ReconcileChange, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Reconcile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		changes = nil

		zones, err := s.repo.LockAllTx(ctx, sqltx)
		if err != nil {
			return err
		}

		active, err := s.repo.CountActiveByEquipmentTx(ctx, sqltx)
		if err != nil {
			return err
		}

		expected := s.expectedCounts(active)

		for _, zone := range zones {
			want := expected[zone.ZoneName]
			if zone.CurrentBookings == want {
				continue
			}

			if err := s.repo.SetCountTx(ctx, sqltx, zone.ZoneName, want); err != nil {
				return err
			}

			changes = append(changes, dto.ReconcileChange{ZoneName: zone.ZoneName, Before: zone.CurrentBookings, After: want})
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to reconcile zone counters")

		return nil, fmt.Errorf("failed to reconcile zone counters: %w", err)
	}

	for _, change := range changes {
		metrics.RecordReconcileCorrection(change.ZoneName)
		log.Warn().
			Str("zone", change.ZoneName).
			Int("before", change.Before).
			Int("after", change.After).
			Msg("zone counter corrected")
	}

	scope.SetAttribute("ledger.corrections", len(changes))
	log.Info().Int("corrections", len(changes)).Msg("zone counters reconciled")

	return changes, nil
}

func (s *serviceImpl) expectedCounts(active map[int]int) map[string]int {
	expected := map[string]int{}

	for equipmentID, count := range active {
		zone, ok := s.zones.ZoneFor(equipmentID)
		if !ok {
			log.Warn().Int("equipment_id", equipmentID).Int("active", count).Msg("active bookings on equipment without a zone")

			continue
		}

		expected[zone] += count
	}

	return expected
}

// VerifyZones returns the configured zones that have no gym_map row.
func (s *serviceImpl) VerifyZones(ctx context.Context) (missing []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.VerifyZones")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.repo.GetAll(ctx, gDto.FilterGroup{}, constant.OrderByZoneID, model.FieldZoneName)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}

	stored := make([]string, 0, len(rows))
	for _, row := range rows {
		stored = append(stored, row.ZoneName)
	}

	for _, zone := range s.zones.Zones() {
		if !slices.Contains(stored, zone) {
			log.Warn().Str("zone", zone).Msg("configured zone has no gym_map row")

			missing = append(missing, zone)
		}
	}

	return missing, nil
}
