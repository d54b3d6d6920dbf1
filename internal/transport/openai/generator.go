package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/AliAbdallah21/foodrec/internal/domain"
)

// Generator produces chat completions via the OpenAI-compatible API.
type Generator struct {
	client *openai.Client
	model  string
}

// GeneratorConfig holds the chat completion settings.
type GeneratorConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewGenerator creates an OpenAI-compatible chat completion client.
func NewGenerator(cfg *GeneratorConfig) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Generate sends a prompt with a system role and returns the completion text.
// Any backend failure is wrapped with domain.ErrGenerationFailed.
func (g *Generator) Generate(
	ctx context.Context, system, prompt string, maxTokens int, temperature float32,
) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w: %w", domain.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response: %w", domain.ErrGenerationFailed)
	}

	return resp.Choices[0].Message.Content, nil
}
