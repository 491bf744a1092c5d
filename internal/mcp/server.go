package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"students/internal/domain"
	"students/internal/jsonapi"
)

// Getter serves one resource document. A nil document with a nil error
// means the student has no such record.
type Getter interface {
	Get(ctx context.Context, kind domain.ResourceKind, osuID string, params []jsonapi.QueryParam) (*jsonapi.Document, error)
}

// Server is the MCP server for the students API.
// It exposes student resources as tools, resource templates and prompts so
// AI agents can read a student's records.
type Server struct {
	mcp      *server.MCPServer
	students Getter
}

// New creates and configures a new MCP server with all tools and resources.
func New(students Getter, version string) *Server {
	s := &Server{students: students}

	s.mcp = server.NewMCPServer(
		"students-mcp",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	s.registerStudentTools()
	s.registerResources()
	s.registerPrompts()
	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}
