package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"students/internal/domain"
	"students/internal/jsonapi"
)

// errNotFound marks a lookup that found no record.
var errNotFound = errors.New("not found")

func (s *Server) registerStudentTools() {
	s.mcp.AddTool(mcp.NewTool("list_student_resources",
		mcp.WithDescription("List the student resources that can be read, with their cardinality and whether they accept a term filter"),
	), s.handleListResources)

	s.mcp.AddTool(mcp.NewTool("get_student_resource",
		mcp.WithDescription("Read one resource document (JSON:API) for a student by OSU id"),
		mcp.WithString("osuId", mcp.Description("Nine digit OSU id of the student"), mcp.Required()),
		mcp.WithString("resource", mcp.Description("Resource path, e.g. gpa, grades, class-schedule"), mcp.Required()),
		mcp.WithString("term", mcp.Description("Term code to filter by, e.g. 201901 (collection resources only)")),
	), s.handleGetResource)
}

type resourceSummary struct {
	Resource   string `json:"resource"`
	Definition string `json:"definition"`
	Collection bool   `json:"collection"`
	TermFilter bool   `json:"termFilter"`
}

func (s *Server) handleListResources(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var out []resourceSummary
	for _, info := range domain.Resources() {
		out = append(out, resourceSummary{
			Resource:   info.Path,
			Definition: info.Definition,
			Collection: info.Collection,
			TermFilter: info.TermFilter,
		})
	}
	return jsonResult(out)
}

func (s *Server) handleGetResource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	osuID := req.GetString("osuId", "")
	resource := req.GetString("resource", "")
	if osuID == "" || resource == "" {
		return nil, fmt.Errorf("osuId and resource are required")
	}
	var params []jsonapi.QueryParam
	if term := req.GetString("term", ""); term != "" {
		params = append(params, jsonapi.QueryParam{Key: "term", Value: term})
	}

	doc, err := s.fetch(ctx, resource, osuID, params)
	if errors.Is(err, errNotFound) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return nil, err
	}
	return jsonResult(doc)
}

// fetch resolves resource and reads the document. Absence is reported as an
// error wrapping errNotFound.
func (s *Server) fetch(ctx context.Context, resource, osuID string, params []jsonapi.QueryParam) (*jsonapi.Document, error) {
	info, err := domain.LookupResource(resource)
	if err != nil {
		return nil, err
	}
	doc, err := s.students.Get(ctx, info.Kind, osuID, params)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", info.Path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("no %s record for %s: %w", info.Path, osuID, errNotFound)
	}
	return doc, nil
}
