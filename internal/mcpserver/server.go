// Package mcpserver exposes the headline pipeline as MCP tools so
// agent clients can annotate headlines over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"headline-lens/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Annotator runs the deterministic pipeline for one headline.
type Annotator interface {
	Annotate(ctx context.Context, h domain.Headline) domain.Annotation
}

type AnnotateInput struct {
	Text           string `json:"text" jsonschema:"the headline text to annotate"`
	RelatedSymbols string `json:"related_symbols,omitempty" jsonschema:"comma-separated ticker symbols the news provider attached to the headline"`
	Category       string `json:"category,omitempty" jsonschema:"provider category hint such as earnings or crypto"`
}

type AnnotateOutput struct {
	Matches   []domain.InstrumentMatch `json:"matches"`
	Relevance domain.RelevanceDecision `json:"relevance"`
	Topic     domain.TopicLabel        `json:"topic"`
	Impact    domain.ImpactLabel       `json:"impact,omitempty"`
	Segments  []domain.Segment         `json:"segments"`
}

type ExtractInput struct {
	Text           string `json:"text" jsonschema:"the headline text to scan for instruments"`
	RelatedSymbols string `json:"related_symbols,omitempty" jsonschema:"comma-separated ticker symbols the news provider attached to the headline"`
}

type ExtractOutput struct {
	Matches []domain.InstrumentMatch `json:"matches"`
}

type Server struct {
	annotator Annotator
}

func NewServer(annotator Annotator) *Server {
	return &Server{annotator: annotator}
}

// Build assembles the MCP server with both tools registered.
func (s *Server) Build(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "headline-lens",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "annotate_headline",
		Description: "Annotate a market headline with instrument matches, relevance decision, topic, impact, and highlight segments",
	}, s.annotateHeadline)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_instruments",
		Description: "Extract up to two tradable instrument symbols (stocks and ETFs) mentioned or implied by a headline",
	}, s.extractInstruments)

	return server
}

// Run serves the tools over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context, version string) error {
	return s.Build(version).Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) annotateHeadline(ctx context.Context, req *mcp.CallToolRequest, in AnnotateInput) (*mcp.CallToolResult, AnnotateOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, AnnotateOutput{}, fmt.Errorf("text is required")
	}

	ann := s.annotator.Annotate(ctx, domain.Headline{
		Text:           in.Text,
		RelatedSymbols: in.RelatedSymbols,
		Category:       in.Category,
	})

	out := AnnotateOutput{
		Matches:   ann.Matches,
		Relevance: ann.Relevance,
		Topic:     ann.Topic,
		Impact:    ann.Impact,
		Segments:  ann.Segments,
	}
	return nil, out, nil
}

func (s *Server) extractInstruments(ctx context.Context, req *mcp.CallToolRequest, in ExtractInput) (*mcp.CallToolResult, ExtractOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, ExtractOutput{}, fmt.Errorf("text is required")
	}

	ann := s.annotator.Annotate(ctx, domain.Headline{
		Text:           in.Text,
		RelatedSymbols: in.RelatedSymbols,
	})

	return nil, ExtractOutput{Matches: ann.Matches}, nil
}
