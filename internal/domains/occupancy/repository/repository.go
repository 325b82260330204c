package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"repnowait/infras/otel"
	"repnowait/infras/postgres"
	"repnowait/internal/domains/occupancy/model"
	"repnowait/shared/constant"
	gDto "repnowait/shared/dto"
	"repnowait/shared/logger"
	gRepo "repnowait/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryAdjust = "UPDATE gym_map SET current_bookings = GREATEST(current_bookings + $2, 0) WHERE zone_name = $1"
	querySet    = "UPDATE gym_map SET current_bookings = $2 WHERE zone_name = $1"
	queryLock   = "SELECT zone_id, zone_name, current_bookings FROM gym_map ORDER BY zone_id FOR UPDATE"

	queryCountActive = "SELECT equipment_id, COUNT(*) AS active FROM bookings WHERE done = false GROUP BY equipment_id"
)

type ZoneOccupancy interface {
	GetAll(ctx context.Context, filter gDto.FilterGroup, orderBy string, columns ...string) ([]model.ZoneOccupancy, error)
	// AdjustTx adds delta to the zone counter, flooring at zero. It reports whether the zone row exists.
	AdjustTx(ctx context.Context, sqltx *sqlx.Tx, zoneName string, delta int) (bool, error)
	SetCountTx(ctx context.Context, sqltx *sqlx.Tx, zoneName string, count int) error
	LockAllTx(ctx context.Context, sqltx *sqlx.Tx) ([]model.ZoneOccupancy, error)
	CountActiveByEquipmentTx(ctx context.Context, sqltx *sqlx.Tx) (map[int]int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ZoneOccupancy]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ZoneOccupancy {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ZoneOccupancy](model.EntityName, model.TableName, model.FieldZoneID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) AdjustTx(ctx context.Context, sqltx *sqlx.Tx, zoneName string, delta int) (matched bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".zone_occupancy.AdjustTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAdjust)

	result, err := sqltx.ExecContext(ctx, queryAdjust, zoneName, delta)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to adjust zone %s: %w", zoneName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for zone %s: %w", zoneName, err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) SetCountTx(ctx context.Context, sqltx *sqlx.Tx, zoneName string, count int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".zone_occupancy.SetCountTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySet)

	if _, err = sqltx.ExecContext(ctx, querySet, zoneName, count); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to set zone %s: %w", zoneName, err)
	}

	return nil
}

// LockAllTx reads every zone row and holds its lock until sqltx ends.
func (r *repositoryImpl) LockAllTx(ctx context.Context, sqltx *sqlx.Tx) (zones []model.ZoneOccupancy, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".zone_occupancy.LockAllTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLock)

	if err = sqltx.SelectContext(ctx, &zones, queryLock); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to lock zones: %w", err)
	}

	return zones, nil
}

type activeCount struct {
	EquipmentID int `db:"equipment_id"`
	Active      int `db:"active"`
}

// CountActiveByEquipmentTx counts bookings with done = false per equipment id.
func (r *repositoryImpl) CountActiveByEquipmentTx(ctx context.Context, sqltx *sqlx.Tx) (counts map[int]int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".zone_occupancy.CountActiveByEquipmentTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountActive)

	var rows []activeCount

	if err = sqltx.SelectContext(ctx, &rows, queryCountActive); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}

	counts = make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.EquipmentID] = row.Active
	}

	return counts, nil
}
