package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"students/internal/schema"
)

type schemaOptions struct {
	file   string
	output string
}

func newSchemaCmd() *cobra.Command {
	opts := &schemaOptions{}
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the resource definitions and check that every resource resolves",
		Example: `  # Compiled-in definitions
  students schema

  # Definitions read from an OpenAPI document, as YAML
  students schema --file openapi.yaml -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(opts.file)
			if err != nil {
				return err
			}
			return printSchema(cmd.OutOrStdout(), registry, opts.output)
		},
	}
	cmd.Flags().StringVar(&opts.file, "file", "", "OpenAPI document to read instead of the compiled-in definitions")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func printSchema(w io.Writer, registry *schema.Registry, output string) error {
	defs := make([]schema.Definition, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		d, err := registry.Definition(name)
		if err != nil {
			return err
		}
		defs = append(defs, *d)
	}

	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(defs)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "NAME\tTYPE\tCOLLECTION\tATTRIBUTES")
		for _, d := range defs {
			attrs := d.Attributes
			if len(attrs) == 0 {
				attrs = d.Properties
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", d.Name, orDash(d.Type), d.Collection, strings.Join(attrs, ", "))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
