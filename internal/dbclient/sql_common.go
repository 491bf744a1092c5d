package dbclient

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"students/internal/domain"
)

// sqlConnector is the shared implementation for MySQL, Postgres, and SQLite.
type sqlConnector struct {
	driverName string
	db         *sql.DB
}

// newSQLConnector creates a generic SQL connector.
func newSQLConnector(driverName, dsn string) (*sqlConnector, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(10 * time.Minute)

	return &sqlConnector{driverName: driverName, db: db}, nil
}

func (c *sqlConnector) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.db.PingContext(ctx)
}

// isReadQuery detects if a query is a read (SELECT or WITH).
func isReadQuery(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	for _, prefix := range []string{"SELECT", "WITH"} {
		if strings.HasPrefix(q, prefix) {
			return true
		}
	}
	return false
}

// queryTimeout bounds a single record query.
const queryTimeout = 30 * time.Second

func (c *sqlConnector) Query(ctx context.Context, query string, args ...any) ([]domain.RawRecord, error) {
	if !isReadQuery(query) {
		return nil, ErrWriteQuery
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var records []domain.RawRecord
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for j := range values {
			ptrs[j] = &values[j]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		record := make(domain.RawRecord, len(cols))
		for j, v := range values {
			record[cols[j]] = formatValue(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return records, nil
}

// formatValue converts a scanned database value to its text form.
// Timestamps without a clock part are rendered as plain dates.
func formatValue(v any) null.String {
	switch val := v.(type) {
	case nil:
		return null.String{}
	case []byte:
		return null.StringFrom(string(val))
	case string:
		return null.StringFrom(val)
	case int64:
		return null.StringFrom(strconv.FormatInt(val, 10))
	case float64:
		return null.StringFrom(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		if val {
			return null.StringFrom("Y")
		}
		return null.StringFrom("N")
	case time.Time:
		return null.StringFrom(formatTime(val))
	default:
		return null.StringFrom(fmt.Sprintf("%v", val))
	}
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}

func (c *sqlConnector) Close() error {
	return c.db.Close()
}
