package service

import (
	"context"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/repository"
	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/logger"
)

// SentimentClassifier labels text. It never fails: backend errors are
// logged and downgraded to neutral.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) entity.Sentiment
}

// NewSentimentClassifier creates a classifier on top of one backend.
func NewSentimentClassifier(backend repository.SentimentRepository, log *logger.Logger) SentimentClassifier {
	return &sentimentClassifier{
		backend: backend,
		logger:  log.With(logger.StringField("sentiment_provider", backend.Name())),
	}
}

type sentimentClassifier struct {
	backend repository.SentimentRepository
	logger  *logger.Logger
}

func (c *sentimentClassifier) Classify(ctx context.Context, text string) entity.Sentiment {
	if strings.TrimSpace(text) == "" {
		return entity.SentimentNeutral
	}

	sentiment, err := c.backend.Classify(ctx, text)
	if err != nil {
		c.logger.Warn("Sentiment analysis failed, falling back to neutral", logger.ErrorField(err))
		return entity.SentimentNeutral
	}
	if !sentiment.Valid() {
		c.logger.Warn("Sentiment backend returned an unknown label, falling back to neutral", logger.StringField("label", string(sentiment)))
		return entity.SentimentNeutral
	}
	return sentiment
}
