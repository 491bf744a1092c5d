package domain

// DatabaseDriver represents the type of database engine.
type DatabaseDriver string

const (
	DatabaseDriverMySQL    DatabaseDriver = "mysql"
	DatabaseDriverPostgres DatabaseDriver = "postgres"
	DatabaseDriverMongoDB  DatabaseDriver = "mongodb"
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
)

// DatabaseConnection holds the metadata for connecting to the student records database.
// The password is resolved separately through a secret store.
type DatabaseConnection struct {
	Driver    DatabaseDriver `json:"driver" yaml:"driver" validate:"required,oneof=mysql postgres mongodb sqlite"`
	Host      string         `json:"host" yaml:"host" validate:"required"` // hostname or file path (sqlite)
	Port      int            `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	Database  string         `json:"database" yaml:"database"`
	Username  string         `json:"username" yaml:"username"`
	SSLMode   string         `json:"sslMode" yaml:"sslMode"`
	ExtraJSON string         `json:"extraJson" yaml:"extraJson"` // driver-specific options

	// PasswordSource selects the secret store: "env" (default) or "keychain".
	PasswordSource string `json:"passwordSource" yaml:"passwordSource" validate:"omitempty,oneof=env keychain"`
}
