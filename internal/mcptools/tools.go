package mcptools

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resume-engine/internal/analyses"
	"resume-engine/internal/matching"
)

// AnalyzeInput is the input schema for analyze_resume.
type AnalyzeInput struct {
	Text     string `json:"text" jsonschema:"plain résumé text"`
	FileName string `json:"file_name,omitempty" jsonschema:"original file name, used only for the file type check"`
}

// MatchInput is the input schema for match_resume.
type MatchInput struct {
	ResumeText string                   `json:"resume_text" jsonschema:"plain résumé text"`
	Job        matching.JobRequirements `json:"job" jsonschema:"requirements extracted from the job posting"`
}

func (s *Server) registerTools() {
	readOnly := &mcp.ToolAnnotations{ReadOnlyHint: true}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_resume",
		Description: "Score a résumé with deterministic rules and return graded categories, cited defects and recommendations",
		Annotations: readOnly,
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "match_resume",
		Description: "Score a résumé against a job's extracted requirements",
		Annotations: readOnly,
	}, s.handleMatch)
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, analyses.AnalysisResult, error) {
	env, err := s.analyses.Run(ctx, uuid.NewString(), input.Text, input.FileName)
	if err != nil {
		return nil, analyses.AnalysisResult{}, err
	}
	return nil, env.Result, nil
}

func (s *Server) handleMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MatchInput,
) (*mcp.CallToolResult, matching.MatchResult, error) {
	resp, err := s.matches.Run(ctx, uuid.NewString(), matching.Request{
		ResumeText: input.ResumeText,
		Job:        input.Job,
	})
	if err != nil {
		return nil, matching.MatchResult{}, err
	}
	return nil, resp.Result, nil
}
