package transaction

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"repnowait/infras/otel"
	"repnowait/infras/postgres"
	"repnowait/shared/constant"
	"repnowait/shared/failure"
	"repnowait/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Func runs inside an open transaction. Returning an error rolls it back.
type Func func(ctx context.Context, tx *sqlx.Tx) error

// Transactor runs a unit of work atomically on the write connection.
type Transactor interface {
	WithinTx(ctx context.Context, fn Func) error
}

type transactor struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Transactor {
	return &transactor{
		db:   db,
		otel: otl,
	}
}

// WithinTx commits when fn succeeds and rolls back when fn fails or panics.
// Failures from fn are returned unwrapped so callers keep their status codes.
func (t *transactor) WithinTx(ctx context.Context, fn Func) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelTransactionScope, constant.OtelTransactionScope+".WithinTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(tx)
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		rollback(tx)

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		return fmt.Errorf("transaction failed: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func rollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Error().Err(err).Msg("failed to rollback transaction")
	}
}
