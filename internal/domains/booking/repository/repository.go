package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"repnowait/infras/otel"
	"repnowait/infras/postgres"
	"repnowait/internal/domains/booking/model"
	"repnowait/shared/constant"
	gDto "repnowait/shared/dto"
	"repnowait/shared/logger"
	gRepo "repnowait/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	GetAll(ctx context.Context, filter gDto.FilterGroup, orderBy string, columns ...string) ([]model.Booking, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (model.Booking, error)
	// CompleteTx marks an active booking done. It returns the zero Booking when no active booking has id.
	CompleteTx(ctx context.Context, sqltx *sqlx.Tx, id int) (model.Booking, error)
	// DeleteTx removes the booking and returns the row as it was. It returns the zero Booking when id is unknown.
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, id int) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel

	queryComplete string
	queryDelete   string
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	repo := gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel)
	returning := repo.SelectColumns()

	return &repositoryImpl{
		Repository:    repo,
		otel:          otel,
		queryComplete: fmt.Sprintf("UPDATE %s SET done = true WHERE id = $1 AND done = false RETURNING %s", model.TableName, returning),
		queryDelete:   fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", model.TableName, returning),
	}
}

func (r *repositoryImpl) CompleteTx(ctx context.Context, sqltx *sqlx.Tx, id int) (model.Booking, error) {
	return r.returningTx(ctx, sqltx, "CompleteTx", r.queryComplete, id)
}

func (r *repositoryImpl) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, id int) (model.Booking, error) {
	return r.returningTx(ctx, sqltx, "DeleteTx", r.queryDelete, id)
}

func (r *repositoryImpl) returningTx(ctx context.Context, sqltx *sqlx.Tx, method, query string, id int) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, method))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = sqltx.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Booking{}, fmt.Errorf("failed to run %s on booking %d: %w", method, id, err)
	}

	return booking, nil
}
