package dbclient

import (
	"fmt"
	"strings"

	"students/internal/domain"

	_ "github.com/lib/pq"
)

const postgresApplicationName = "students-api"

// buildPostgresDSN constructs a libpq key/value connection string. Values are
// quoted so passwords may contain spaces or quotes. TLS is required unless
// the host is local or sslMode says otherwise. ExtraJSON options are appended
// in key order and may override the defaults.
func buildPostgresDSN(conn *domain.DatabaseConnection, password string) string {
	port := conn.Port
	if port == 0 {
		port = 5432
	}
	sslMode := conn.SSLMode
	if sslMode == "" {
		sslMode = "require"
		if isLocalHost(conn.Host) {
			sslMode = "disable"
		}
	}

	pairs := [][2]string{
		{"host", conn.Host},
		{"port", fmt.Sprint(port)},
		{"user", conn.Username},
		{"password", password},
		{"dbname", conn.Database},
		{"sslmode", sslMode},
		{"connect_timeout", "10"},
		{"application_name", postgresApplicationName},
	}
	extras, keys := extraParams(conn)
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, extras[k]})
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		parts = append(parts, p[0]+"="+quotePostgresValue(p[1]))
	}
	return strings.Join(parts, " ")
}

// quotePostgresValue single-quotes v when libpq would otherwise split or
// misread it.
func quotePostgresValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
