package main

import (
	"context"
	"errors"
	"repnowait/di"
	kafkaMocks "repnowait/infras/kafka/mocks"
	otelMocks "repnowait/infras/otel/mocks"
	"repnowait/infras/postgres"
	"repnowait/internal/domains/occupancy/mocks"
	"repnowait/internal/domains/occupancy/model/dto"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJob(t *testing.T) (*di.LedgerJob, *mocks.MockLedger) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectClose()
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	db := sqlx.NewDb(mockDB, "postgres")

	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().Close().Return(nil)

	ledger := mocks.NewMockLedger(ctrl)

	return &di.LedgerJob{
		Ledger: ledger,
		Resources: di.Resources{
			Otel:  otelMocks.NewOtel(),
			DB:    &postgres.Connection{Read: db, Write: db},
			Kafka: client,
		},
	}, ledger
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "default", args: []string{"reconcile"}, want: commandReconcile},
		{name: "reconcile", args: []string{"reconcile", "reconcile"}, want: commandReconcile},
		{name: "verify", args: []string{"reconcile", "verify"}, want: commandVerify},
		{name: "unknown", args: []string{"reconcile", "repair"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.args)

			if tt.wantErr {
				assert.ErrorIs(t, err, errUnknownCommand)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Reconcile(t *testing.T) {
	job, ledger := newJob(t)

	ledger.EXPECT().Reconcile(gomock.Any()).Return([]dto.ReconcileChange{{ZoneName: "Bicep Curl", Before: 4, After: 0}}, nil)

	assert.NoError(t, run(context.Background(), job, commandReconcile))
}

func TestRun_ReconcileFailure(t *testing.T) {
	job, ledger := newJob(t)

	ledger.EXPECT().Reconcile(gomock.Any()).Return(nil, errors.New("pq: deadlock detected"))

	err := run(context.Background(), job, commandReconcile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconcile failed")
}

func TestRun_Verify(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		err     error
		wantErr error
	}{
		{name: "all zones present"},
		{name: "missing zones", missing: []string{"Squat Rack"}, wantErr: errMissingZones},
		{name: "store failure", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, ledger := newJob(t)

			ledger.EXPECT().VerifyZones(gomock.Any()).Return(tt.missing, tt.err)

			err := run(context.Background(), job, commandVerify)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "Squat Rack")
			case tt.err != nil:
				assert.ErrorContains(t, err, "zone verification failed")
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	job, _ := newJob(t)

	assert.ErrorIs(t, run(context.Background(), job, "repair"), errUnknownCommand)
}
