package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DetectInput is the input schema for the detect_text tool.
type DetectInput struct {
	Text string `json:"text" jsonschema:"the text passage to score for machine-generation likelihood"`
}

// DetectOutput is the output schema for the detect_text tool.
type DetectOutput struct {
	Score           float64        `json:"score"`
	Confidence      string         `json:"confidence"`
	LikelyGenerated bool           `json:"likely_generated"`
	WordCount       int            `json:"word_count"`
	SentenceCount   int            `json:"sentence_count"`
	Metrics         []MetricOutput `json:"metrics"`
	Flags           []FlagOutput   `json:"flags"`
}

// MetricOutput is one scored signal.
type MetricOutput struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
	Raw   float64 `json:"raw"`
}

// FlagOutput is one plain-language explanation of a salient signal.
type FlagOutput struct {
	Label        string  `json:"label"`
	Metric       string  `json:"metric"`
	Rationale    string  `json:"rationale"`
	Contribution float64 `json:"contribution"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detect_text",
		Description: "Estimate how likely a text passage was machine-generated. Returns a 0-100 score, a confidence band, per-signal values, and plain-language flags.",
	}, s.handleDetect)
}

// handleDetect handles the detect_text tool invocation.
func (s *Server) handleDetect(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DetectInput,
) (*mcp.CallToolResult, DetectOutput, error) {
	result, err := s.engine.Detect(input.Text)
	if err != nil {
		return nil, DetectOutput{}, err
	}

	output := DetectOutput{
		Score:           result.Score,
		Confidence:      string(result.Confidence),
		LikelyGenerated: result.LikelyGenerated,
		WordCount:       result.WordCount,
		SentenceCount:   result.SentenceCount,
		Metrics:         make([]MetricOutput, len(result.Metrics)),
		Flags:           make([]FlagOutput, len(result.Flags)),
	}

	for i, m := range result.Metrics {
		output.Metrics[i] = MetricOutput{
			Kind:  string(m.Kind),
			Value: m.Value,
			Raw:   m.Raw,
		}
	}

	for i, f := range result.Flags {
		output.Flags[i] = FlagOutput{
			Label:        f.Label,
			Metric:       string(f.Metric),
			Rationale:    f.Rationale,
			Contribution: f.Contribution,
		}
	}

	return nil, output, nil
}
