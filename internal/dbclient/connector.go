package dbclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"students/internal/domain"
)

// ErrWriteQuery is returned when a configured query would modify data.
var ErrWriteQuery = errors.New("only read queries are allowed")

// Connector runs read-only record queries against the student records database.
type Connector interface {
	// TestConnection verifies connectivity.
	TestConnection(ctx context.Context) error

	// Query runs query with positional args and returns every row in the
	// order the database produced them. Column values are text or NULL.
	Query(ctx context.Context, query string, args ...any) ([]domain.RawRecord, error)

	// Close releases the underlying pool or client.
	Close() error
}

// NewConnector creates a Connector for the given database connection.
// The password must be provided separately (from a secret.Store).
func NewConnector(conn *domain.DatabaseConnection, password string) (Connector, error) {
	switch conn.Driver {
	case domain.DatabaseDriverSQLite:
		return newSQLiteConnector(conn)
	case domain.DatabaseDriverMySQL:
		return newSQLConnector("mysql", buildMySQLDSN(conn, password))
	case domain.DatabaseDriverPostgres:
		return newSQLConnector("postgres", buildPostgresDSN(conn, password))
	case domain.DatabaseDriverMongoDB:
		return newMongoConnector(conn, password)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", conn.Driver)
	}
}

// extraParams decodes the connection's ExtraJSON into driver options and
// returns them with their keys sorted. Malformed JSON yields no options.
func extraParams(conn *domain.DatabaseConnection) (map[string]string, []string) {
	if conn.ExtraJSON == "" || conn.ExtraJSON == "{}" {
		return nil, nil
	}
	var extras map[string]string
	if json.Unmarshal([]byte(conn.ExtraJSON), &extras) != nil || len(extras) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(extras))
	for k := range extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return extras, keys
}

// isLocalHost reports whether host names this machine or a unix socket.
func isLocalHost(host string) bool {
	switch host {
	case "", "localhost", "127.0.0.1", "::1":
		return true
	}
	return strings.HasPrefix(host, "/")
}
