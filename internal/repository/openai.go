package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/docdigest/docdigest/internal/entity"
)

const (
	openAITemperature = 0.2
	openAIMaxTokens   = 1024

	summarizeSystemPrompt = `You summarize documents.
	Respond with the summary only, no preamble and no commentary.
	Stay neutral and objective, and keep critical context
	(dates, numbers, names).`

	entitySystemPrompt = `You extract named entities from documents.
	Respond with a JSON array only, no prose, in this form:
	[{"text": "entity surface text", "label": "PERSON|ORG|DATE|MONEY|GPE|..."}]`
)

// OpenAIClient backs the model strategies with OpenAI chat completions,
// as an alternative provider to Gemini.
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient creates an OpenAI-backed strategy client.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
		),
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

// Summarize asks the model for a summary within the given word bounds.
func (c *OpenAIClient) Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error) {
	user := fmt.Sprintf("Summarize the following text in %d to %d words.\n\n%s", minWords, maxWords, text)
	return c.complete(ctx, summarizeSystemPrompt, user)
}

// Extract asks the model for named entities as (text, label) pairs.
func (c *OpenAIClient) Extract(ctx context.Context, text string) ([]entity.Entity, error) {
	raw, err := c.complete(ctx, entitySystemPrompt, "Text:\n"+text)
	if err != nil {
		return nil, err
	}
	return parseEntityJSON(raw)
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4_1Mini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature:         openai.Float(openAITemperature),
		MaxCompletionTokens: openai.Int(openAIMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion choices are missing")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("chat completion choice message content is missing")
	}
	return content, nil
}
