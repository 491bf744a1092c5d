package dbclient

import (
	"fmt"
	"time"

	"students/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// mysqlTLS maps the libpq-style sslMode values used in config onto the
// driver's tls parameter.
var mysqlTLS = map[string]string{
	"disable":     "false",
	"require":     "skip-verify",
	"verify-ca":   "true",
	"verify-full": "true",
}

// buildMySQLDSN constructs a MySQL DSN through the driver's own Config so
// credentials are escaped by the driver. Without an sslMode, TLS is used when
// the server offers it. ExtraJSON options become connection parameters.
func buildMySQLDSN(conn *domain.DatabaseConnection, password string) string {
	port := conn.Port
	if port == 0 {
		port = 3306
	}
	cfg := mysql.NewConfig()
	cfg.User = conn.Username
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", conn.Host, port)
	cfg.DBName = conn.Database
	cfg.ParseTime = true
	cfg.Timeout = 10 * time.Second
	cfg.ReadTimeout = queryTimeout

	cfg.TLSConfig = "preferred"
	if tls, ok := mysqlTLS[conn.SSLMode]; ok {
		cfg.TLSConfig = tls
	}

	cfg.Params = map[string]string{"charset": "utf8mb4"}
	extras, keys := extraParams(conn)
	for _, k := range keys {
		cfg.Params[k] = extras[k]
	}
	return cfg.FormatDSN()
}
