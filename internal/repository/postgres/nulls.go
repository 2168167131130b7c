package postgres

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"
)

func nullString(ptr *string) sql.NullString {
	if ptr == nil {
		return sql.NullString{Valid: false}
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: v, Valid: true}
}

func nullFloat(ptr *float64) sql.NullFloat64 {
	if ptr == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *ptr, Valid: true}
}

func nullTime(ptr *time.Time) sql.NullTime {
	if ptr == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *ptr, Valid: true}
}

func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
