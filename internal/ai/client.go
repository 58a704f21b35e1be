// Package ai wraps the chat-completion provider behind a small client.
// Groq serves the OpenAI chat API, so the base URL is pointed at its
// endpoint via configuration.
package ai

import (
	"context"
	"errors"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// Client sends a single synchronous chat completion per question.
// No retries, no streaming.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg config.AIConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(apiCfg),
		model: cfg.Model,
	}
}

// Ask forwards the data report as the system turn and the question as the
// user turn, returning the model's first answer verbatim.
func (c *Client) Ask(ctx context.Context, systemPrompt, question string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
