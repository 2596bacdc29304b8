package repository

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/sashabaranov/go-openai"
)

type openaiRepository struct {
	client *openai.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewOpenAIRepository creates a ChatCompleter backed by the OpenAI chat completions API.
func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) ChatCompleter {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &openaiRepository{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: log,
	}
}

func (r *openaiRepository) Name() string {
	return common.LLMProviderOpenAI + "/" + r.cfg.OpenAI.Model
}

func (r *openaiRepository) Complete(ctx context.Context, prompt string) (string, error) {
	if timeout := r.cfg.Sentiment.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	r.logger.Debug("Sending request to OpenAI API", logger.StringField("model", r.cfg.OpenAI.Model))

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.cfg.OpenAI.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		// go-openai drops a zero temperature from the request body.
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   10,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
