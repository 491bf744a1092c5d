// Package app wires configuration, the records database and the student
// service together, and defines the command line.
package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"students/internal/config"
	"students/internal/dao"
	"students/internal/dbclient"
	"students/internal/domain"
	"students/internal/jsonapi"
	"students/internal/schema"
	"students/internal/secret"
	"students/internal/serializer"
	"students/internal/service"
)

// keychainAccount is the Keychain account holding the database password.
const keychainAccount = "students-records-db"

// App holds the wired dependencies shared by every command.
type App struct {
	cfg      *config.Config
	registry *schema.Registry
	conn     dbclient.Connector
	dao      *dao.StudentsDAO
	students *service.StudentService
}

// New builds the App described by cfg. The schema is loaded and checked
// first so a bad definition fails before any database connection is made.
func New(cfg *config.Config) (*App, error) {
	registry, err := loadRegistry(cfg.SchemaFile)
	if err != nil {
		return nil, err
	}

	password, err := databasePassword(cfg.Database)
	if err != nil {
		return nil, err
	}
	conn, err := dbclient.NewConnector(&cfg.Database, password)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Database.Driver, err)
	}
	d, err := dao.New(conn, cfg.Queries)
	if err != nil {
		conn.Close()
		return nil, err
	}
	for _, info := range domain.Resources() {
		if !d.Supports(info.Kind) {
			log.Printf("[STUDENTS] no query configured for %s; requests will fail", info.Path)
		}
	}

	s := serializer.New(jsonapi.NewBuilder(registry, cfg.BasePath))
	return &App{
		cfg:      cfg,
		registry: registry,
		conn:     conn,
		dao:      d,
		students: service.NewStudentService(d, s),
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.conn.Close()
}

// Ping verifies the records database is reachable.
func (a *App) Ping(ctx context.Context) error {
	return a.dao.Ping(ctx)
}

// loadRegistry returns the compiled-in schema, or the one read from path,
// after checking that every resource definition is present.
func loadRegistry(path string) (*schema.Registry, error) {
	registry := schema.Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		defer f.Close()
		if registry, err = schema.LoadOpenAPI(f); err != nil {
			return nil, fmt.Errorf("schema %s: %w", path, err)
		}
	}

	names := make([]string, 0, len(domain.Resources()))
	for _, info := range domain.Resources() {
		names = append(names, info.Definition)
	}
	if err := registry.Require(names...); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return registry, nil
}

func databasePassword(conn domain.DatabaseConnection) (string, error) {
	if conn.Driver == domain.DatabaseDriverSQLite {
		return "", nil
	}
	store, err := secret.New(conn.PasswordSource)
	if err != nil {
		return "", err
	}
	key := config.EnvDBPassword
	if conn.PasswordSource == "keychain" {
		key = keychainAccount
	}
	password, err := store.Get(key)
	if err != nil {
		return "", fmt.Errorf("database password: %w", err)
	}
	return password, nil
}
