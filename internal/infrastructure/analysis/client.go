// Package analysis produces triage reports and direct answers through a
// chat-completion model.
package analysis

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"inqboard/internal/shared/config"
	"inqboard/internal/shared/logger"
)

type Client struct {
	client *openai.Client
	model  string
	log    logger.Interface
}

func NewClient(cfg *config.AnalysisConfig, log logger.Interface) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("analysis api key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		log:    log,
	}, nil
}

// Analyze produces the full triage report for one inquiry. An empty
// completion is an error: the pipeline must never approve an empty report.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (string, error) {
	return c.complete(ctx, BuildAnalysisPrompt(req))
}

// Answer responds to a direct board question.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question is empty")
	}
	return c.complete(ctx, BuildAnswerPrompt(question))
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	c.log.Debugw("requesting completion", "model", c.model, "prompt_chars", len(prompt))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("completion returned empty content")
	}

	return content, nil
}
