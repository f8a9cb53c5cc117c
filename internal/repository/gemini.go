package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docdigest/docdigest/internal/entity"
)

// GeminiClient calls the Gemini REST API. It backs both the model
// summarization strategy and the model entity strategy.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient creates a Gemini API client for the given model.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *GeminiClient) Name() string { return "gemini" }

// Summarize asks the model for a summary within the given word bounds.
func (c *GeminiClient) Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following text in %d to %d words. Respond with the summary only, no preamble.\n\n%s",
		minWords, maxWords, text,
	)

	summary, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("empty summary in response")
	}
	return summary, nil
}

// Extract asks the model for named entities as (text, label) pairs.
func (c *GeminiClient) Extract(ctx context.Context, text string) ([]entity.Entity, error) {
	var prompt strings.Builder
	prompt.WriteString("Extract the named entities from the text below. ")
	prompt.WriteString("Respond with a JSON array only, no prose, in this form:\n\n")
	prompt.WriteString(`[{"text": "entity surface text", "label": "PERSON|ORG|DATE|MONEY|GPE|..."}]`)
	prompt.WriteString("\n\nText:\n")
	prompt.WriteString(text)

	raw, err := c.generate(ctx, prompt.String())
	if err != nil {
		return nil, err
	}
	return parseEntityJSON(raw)
}

// generate sends a single-turn generateContent request.
func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// parseEntityJSON extracts the first JSON array from a model response,
// tolerating surrounding prose or code fences.
func parseEntityJSON(raw string) ([]entity.Entity, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]") + 1
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array in entity response")
	}

	var entities []entity.Entity
	if err := json.Unmarshal([]byte(raw[start:end]), &entities); err != nil {
		return nil, fmt.Errorf("unmarshaling entity response: %w", err)
	}
	return entities, nil
}
