package aigen

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/config"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/generation"
)

const systemPrompt = `You are a shift scheduling engine for a multi-store business.
You receive a JSON document with a date range, employees (skills A/B/C per type,
desired work days), stores (skill requirements per day category), submitted
preferences, events with customer predictions, relationship constraints
(pairs that must never share a slot), and options.
Respond with a JSON object of the form
{"assignments":[{"employee_id":"...","store_id":"...","date":"YYYY-MM-DD","start_time":"HH:MM","end_time":"HH:MM"}]}
covering every date in the range. Use only employee and store IDs from the
input. Do not include any other fields or commentary.`

// Client adapts a chat-completion model into a generation.Generator.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg config.GeneratorConfig) *Client {
	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(apiConfig),
		model: cfg.Model,
	}
}

type generateResult struct {
	Assignments []generation.ProposedAssignment `json:"assignments"`
}

// Generate implements generation.Generator.
func (c *Client) Generate(ctx context.Context, pkg generation.Package) ([]generation.ProposedAssignment, error) {
	payload, err := json.Marshal(pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation package: %w", err)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no completion choices", generation.ErrInvalidGenerationResult)
	}

	var result generateResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidGenerationResult, err)
	}

	return result.Assignments, nil
}
