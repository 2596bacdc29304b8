package repository

import (
	"context"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"
)

// llmSentimentRepository classifies text by prompting a chat model.
type llmSentimentRepository struct {
	completer ChatCompleter
	logger    *logger.Logger
}

// NewLLMSentimentRepository creates a SentimentRepository on top of any chat completer.
func NewLLMSentimentRepository(completer ChatCompleter, log *logger.Logger) SentimentRepository {
	return &llmSentimentRepository{completer: completer, logger: log}
}

// Name includes the completer so labels cached per backend never cross models.
func (r *llmSentimentRepository) Name() string {
	return common.SentimentProviderLLM + ":" + r.completer.Name()
}

func (r *llmSentimentRepository) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	reply, err := r.completer.Complete(ctx, BuildSentimentPrompt(text))
	if err != nil {
		return "", err
	}

	r.logger.Debug("LLM sentiment reply", logger.StringField("reply", reply))
	return ParseLLMSentiment(reply), nil
}

// ParseLLMSentiment searches the reply case-insensitively for "positive",
// then "negative". Anything else is neutral.
func ParseLLMSentiment(reply string) entity.Sentiment {
	raw := strings.ToLower(strings.TrimSpace(reply))
	switch {
	case strings.Contains(raw, string(entity.SentimentPositive)):
		return entity.SentimentPositive
	case strings.Contains(raw, string(entity.SentimentNegative)):
		return entity.SentimentNegative
	default:
		return entity.SentimentNeutral
	}
}
