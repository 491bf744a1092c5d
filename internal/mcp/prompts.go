package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("academic_summary",
		mcp.WithPromptDescription("Summarize a student's academic standing from their GPA, status, grades and holds"),
		mcp.WithArgument("osuId",
			mcp.ArgumentDescription("Nine digit OSU id of the student"),
			mcp.RequiredArgument(),
		),
	), s.handleAcademicSummaryPrompt)
}

func (s *Server) handleAcademicSummaryPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	osuID := req.Params.Arguments["osuId"]
	if osuID == "" {
		return nil, fmt.Errorf("osuId is required")
	}
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Academic summary for %s", osuID),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Summarize the academic situation of student %s.

Use get_student_resource with osuId %q to read, in order:
1. "classification" for level and class standing
2. "gpa" for institutional and overall GPA per level
3. "academic-status" for the standing of each term
4. "holds" for any process currently blocked

A tool result marked as an error with "not found" means the student has no such record; say so instead of guessing.
Report GPA values as given and list every hold with the processes it affects.`, osuID, osuID),
				},
			},
		},
	}, nil
}
