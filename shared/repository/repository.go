package repository

import (
	"context"
	"fmt"
	"reflect"
	"repnowait/infras/otel"
	"repnowait/infras/postgres"
	"repnowait/shared/constant"
	"repnowait/shared/dto"
	"repnowait/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Repository holds the queries every table shares. Columns come from the db tags of T;
// fields tagged insert:"-" are read back but never written.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, method)
}

// SelectColumns returns the column list used by every select.
func (repo *Repository[T]) SelectColumns(columns ...string) string {
	selected := []string{}

	for _, col := range repo.columns {
		if len(columns) > 0 && !slices.Contains(columns, col) {
			continue
		}

		selected = append(selected, fmt.Sprintf("%s.%s", repo.table, col))
	}

	return strings.Join(selected, ", ")
}

// InsertTx writes model inside sqltx and returns the stored row.
func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) (stored T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertTx"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		repo.table,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(repo.columns, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return stored, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &stored, model)
	if err != nil {
		logger.ErrorWithStack(err)

		return stored, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return stored, nil
}

// GetAll returns every row matching filter ordered by orderBy.
func (repo *Repository[T]) GetAll(ctx context.Context, filter dto.FilterGroup, orderBy string, columns ...string) (models []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)

	if orderBy == "" {
		orderBy = repo.primaryColumn
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s.%s", repo.SelectColumns(columns...), repo.table, where, repo.table, orderBy)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models = []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

// BuildWhereClause renders filter as a WHERE clause with a leading space, or an empty string.
func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

func getColumns(reflectType reflect.Type) (columns, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)

		if field.Tag.Get("insert") != "-" {
			insertColumns = append(insertColumns, dbTag)
		}
	}

	return columns, insertColumns
}
