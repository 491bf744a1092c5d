// Package dao fetches the raw rows of each student resource from the
// configured records database.
package dao

import (
	"context"
	"fmt"
	"log"
	"time"

	"students/internal/dbclient"
	"students/internal/domain"
)

// StudentsDAO runs one configured query per resource kind. Every query takes
// the subject id as its only bind parameter.
type StudentsDAO struct {
	conn    dbclient.Connector
	queries map[domain.ResourceKind]string
}

// MissingQueryError is returned when no query is configured for a kind.
type MissingQueryError struct {
	Kind domain.ResourceKind
}

func (e *MissingQueryError) Error() string {
	return fmt.Sprintf("no query configured for resource %q", e.Kind)
}

// New creates a StudentsDAO. queries is keyed by resource path; unknown paths
// are rejected so that a typo in the configuration fails at startup.
func New(conn dbclient.Connector, queries map[string]string) (*StudentsDAO, error) {
	byKind := make(map[domain.ResourceKind]string, len(queries))
	for path, q := range queries {
		info, err := domain.LookupResource(path)
		if err != nil {
			return nil, fmt.Errorf("queries: %w", err)
		}
		byKind[info.Kind] = q
	}
	return &StudentsDAO{conn: conn, queries: byKind}, nil
}

// Supports reports whether a query is configured for kind.
func (d *StudentsDAO) Supports(kind domain.ResourceKind) bool {
	_, ok := d.queries[kind]
	return ok
}

// Fetch returns the rows of kind for osuID in database order.
// found is false when the query produced no row.
func (d *StudentsDAO) Fetch(ctx context.Context, kind domain.ResourceKind, osuID string) ([]domain.RawRecord, bool, error) {
	q, ok := d.queries[kind]
	if !ok {
		return nil, false, &MissingQueryError{Kind: kind}
	}

	start := time.Now()
	rows, err := d.conn.Query(ctx, q, osuID)
	if err != nil {
		log.Printf("[DAO] %s query failed: %v", kind, err)
		return nil, false, fmt.Errorf("fetch %s: %w", kind, err)
	}
	log.Printf("[DAO] %s: %d rows in %s", kind, len(rows), time.Since(start).Round(time.Millisecond))
	return rows, len(rows) > 0, nil
}

// Ping verifies the database is reachable.
func (d *StudentsDAO) Ping(ctx context.Context) error {
	return d.conn.TestConnection(ctx)
}
