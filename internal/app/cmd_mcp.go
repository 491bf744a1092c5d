package app

import (
	"log"

	"github.com/spf13/cobra"

	mcpserver "students/internal/mcp"
)

func newMCPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve student resources to AI agents over MCP (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open()
			if err != nil {
				return err
			}
			defer a.Close()

			log.SetOutput(cmd.ErrOrStderr())
			log.Println("[MCP] Starting standalone stdio server...")
			return mcpserver.New(a.students, version).ServeStdio()
		},
	}
}
