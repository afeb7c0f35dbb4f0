package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTravelClient implements TravelModelInterface using Google's Gemini models
type GeminiTravelClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiTravelClient creates a new Gemini client
func NewGeminiTravelClient(apiKey, model string) (TravelModelInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTravelClient{
		client:  client,
		model:   model,
		timeout: 30 * time.Second,
	}, nil
}

// GenerateSummary produces a free-text category summary. Markdown links in the
// output are kept as-is; the booking layer mines them later.
func (c *GeminiTravelClient) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(2048)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// GenerateStructuredItinerary asks for JSON only and validates that the reply
// actually is JSON before handing it to the decode boundary.
func (c *GeminiTravelClient) GenerateStructuredItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so brace-matching hacks are unnecessary.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(5000)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini returned invalid JSON")
	}
	return content, nil
}

// CleanJSONResponse strips markdown fences some models wrap around JSON.
func CleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
