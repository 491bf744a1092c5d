package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const resourceScheme = "students://"

func (s *Server) registerResources() {
	// ── students://{osuId}/{resource} ──────────────────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			resourceScheme+"{osuId}/{resource}",
			"Student resource",
			mcp.WithTemplateDescription("JSON:API document of one student resource"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleStudentResource,
	)
}

// parseResourceURI splits students://{osuId}/{resource}.
func parseResourceURI(uri string) (osuID, resource string, err error) {
	rest, ok := strings.CutPrefix(uri, resourceScheme)
	if !ok {
		return "", "", fmt.Errorf("invalid URI %q: expected %s{osuId}/{resource}", uri, resourceScheme)
	}
	osuID, resource, ok = strings.Cut(rest, "/")
	if !ok || osuID == "" || resource == "" || strings.Contains(resource, "/") {
		return "", "", fmt.Errorf("invalid URI %q: expected %s{osuId}/{resource}", uri, resourceScheme)
	}
	return osuID, resource, nil
}

func (s *Server) handleStudentResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	osuID, resource, err := parseResourceURI(uri)
	if err != nil {
		return nil, err
	}

	doc, err := s.fetch(ctx, resource, osuID, nil)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
