package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"students/internal/domain"
	"students/internal/jsonapi"
)

type getOptions struct {
	term string
}

func newGetCmd(root *rootOptions) *cobra.Command {
	opts := &getOptions{}
	cmd := &cobra.Command{
		Use:   "get <resource> <osuId>",
		Short: "Print one resource document for a student",
		Example: `  # GPA levels of a student
  students get gpa 931234567

  # Grades of one term
  students get grades 931234567 --term 201901`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open()
			if err != nil {
				return err
			}
			defer a.Close()
			return a.runGet(cmd, args[0], args[1], opts)
		},
	}
	cmd.Flags().StringVar(&opts.term, "term", "", "Only include rows of this term (collection resources)")
	return cmd
}

func (a *App) runGet(cmd *cobra.Command, resource, osuID string, opts *getOptions) error {
	info, err := domain.LookupResource(resource)
	if err != nil {
		return err
	}
	var params []jsonapi.QueryParam
	if opts.term != "" {
		params = append(params, jsonapi.QueryParam{Key: "term", Value: opts.term})
	}

	doc, err := a.students.Get(cmd.Context(), info.Kind, osuID, params)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("no %s record for %s", info.Path, osuID)
	}
	return writeDocument(cmd.OutOrStdout(), doc)
}

func writeDocument(w io.Writer, doc *jsonapi.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
