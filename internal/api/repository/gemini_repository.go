package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"google.golang.org/genai"
)

type geminiRepository struct {
	genAiClient *genai.Client
	cfg         *config.Config
	logger      *logger.Logger
}

// NewGeminiRepository creates a ChatCompleter backed by the Gemini API.
func NewGeminiRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) ChatCompleter {
	return &geminiRepository{
		genAiClient: genAiClient,
		cfg:         cfg,
		logger:      log,
	}
}

func (r *geminiRepository) Name() string {
	return common.LLMProviderGemini + "/" + r.cfg.Gemini.Model
}

func (r *geminiRepository) Complete(ctx context.Context, prompt string) (string, error) {
	if timeout := r.cfg.Sentiment.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	r.logger.Debug("Sending request to Gemini API", logger.StringField("model", r.cfg.Gemini.Model))

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: 10,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("invalid response from Gemini API: no content found")
	}
	return strings.TrimSpace(text), nil
}
