// Package gemini implements llm.Generator on the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/kalambet/certpath/internal/llm"
)

const defaultTimeout = 60 * time.Second

// Client sends prompts to the Gemini API using a fixed model.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ llm.Generator = (*Client)(nil)

// New creates a Gemini-backed generator. The API key is required; the
// model name is fixed for the lifetime of the client.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Client{client: c, model: model, timeout: defaultTimeout}, nil
}

// Generate sends the prompt as the entire model input and returns the
// trimmed text of the response. One blocking call, one attempt. The
// timeout bounds a hung upstream; any fault comes back as an error for
// the caller to relay.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.client.Models.GenerateContent(callCtx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	return strings.TrimSpace(firstText(res)), nil
}

// firstText extracts the first text part of the first candidate. Safety
// filtered responses come back with no candidates or no parts; both
// reduce to an empty string, which the caller treats as a blank result
// rather than an error.
func firstText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 {
		return ""
	}
	content := res.Candidates[0].Content
	if content == nil {
		return ""
	}
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			return part.Text
		}
	}
	return ""
}
