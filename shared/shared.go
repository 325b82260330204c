package shared

import (
	"errors"
	"fmt"
	"math"
	"repnowait/shared/dto"
	"repnowait/shared/failure"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// ParseID converts a path parameter into a positive identifier that fits a SERIAL column.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 || id > math.MaxInt32 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// FilterByID builds a single equality filter on fieldID.
func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Filter{
		Field:    fieldID,
		Value:    id,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	})
}

// CacheKey joins the parts into a colon separated key under the given prefix.
func CacheKey(prefix string, parts ...any) string {
	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, ":")
}

// IsPqError reports whether err carries a Postgres error with the given SQLSTATE code.
func IsPqError(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	return false
}
