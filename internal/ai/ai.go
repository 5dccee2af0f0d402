/*
Package ai provides functionality to interact with the Gemini AI API and request
search-grounded analysis of football fixtures.
*/
package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// ErrAnalysisFailed is returned for any transport, authentication or provider failure.
var ErrAnalysisFailed = errors.New("analysis failed")

// Citation is one grounding chunk as returned by the provider. Either field may be empty.
type Citation struct {
	URI   string
	Title string
}

type Response struct {
	Text      string
	Citations []Citation
}

// Invoker executes a single prompt against a search-augmented model.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (*Response, error)
}

// GeminiClient is a thin wrapper around the official genai client with Google Search enabled.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{cli: client, model: model}, nil
}

func (c *GeminiClient) Model() string { return c.model }

// Invoke performs exactly one GenerateContent call. Failures are never retried and
// no partial response is returned.
func (c *GeminiClient) Invoke(ctx context.Context, prompt string) (*Response, error) {
	userContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
		Role: "user",
	}

	tools := []*genai.Tool{
		{
			GoogleSearch: &genai.GoogleSearch{},
		},
	}

	resp, err := c.cli.Models.GenerateContent(ctx, c.model, []*genai.Content{userContent}, &genai.GenerateContentConfig{
		Tools: tools,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gemini API call failed: %w", ErrAnalysisFailed, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: empty gemini response", ErrAnalysisFailed)
	}

	return &Response{
		Text:      resp.Text(),
		Citations: citationsFrom(resp),
	}, nil
}

// citationsFrom lists the web grounding chunks of the first candidate in provider order.
func citationsFrom(resp *genai.GenerateContentResponse) []Citation {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return nil
	}

	citations := make([]Citation, 0, len(gm.GroundingChunks))
	for _, chunk := range gm.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			citations = append(citations, Citation{})
			continue
		}
		citations = append(citations, Citation{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return citations
}
