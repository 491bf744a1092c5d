package app

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"students/internal/config"
	"students/internal/domain"
	"students/internal/storage"
)

type seedOptions struct {
	dbPath      string
	writeConfig string
}

func newSeedCmd() *cobra.Command {
	opts := &seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a local SQLite records database with fixture rows",
		Example: `  # Create dev.db and a configuration pointing at it, then serve
  students seed --db dev.db --write-config students.yaml
  students serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.dbPath, "db", "dev.db", "SQLite database file")
	cmd.Flags().StringVar(&opts.writeConfig, "write-config", "", "Also write a configuration file using the seeded database")
	return cmd
}

func runSeed(cmd *cobra.Command, opts *seedOptions) error {
	db, err := storage.New(opts.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Seed(cmd.Context()); err != nil {
		return fmt.Errorf("seed %s: %w", opts.dbPath, err)
	}
	log.Printf("[STUDENTS] Seeded %s with records of %s", opts.dbPath, storage.FixtureSubject)

	if opts.writeConfig == "" {
		return nil
	}
	cfg := &config.Config{
		BasePath: config.DefaultBasePath,
		Listen:   config.DefaultListen,
		Database: domain.DatabaseConnection{
			Driver: domain.DatabaseDriverSQLite,
			Host:   opts.dbPath,
		},
		Queries: storage.DevQueries(),
	}
	if err := cfg.Save(opts.writeConfig); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.writeConfig)
	return nil
}
