package app

import (
	"github.com/spf13/cobra"

	"students/internal/config"
)

// version is set at build time with -ldflags "-X students/internal/app.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "students",
		Short:         "Read-only API over student records",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "students.yaml", "Configuration file")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newMCPCmd(opts),
		newGetCmd(opts),
		newSchemaCmd(),
		newSeedCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// open loads the configuration and builds the App.
func (o *rootOptions) open() (*App, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}
