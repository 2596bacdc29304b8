package repository

import (
	"context"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/entity"
)

// SentimentRepository classifies text with a single backend. Backend errors
// are returned unchanged; the service layer owns the neutral fallback.
type SentimentRepository interface {
	Classify(ctx context.Context, text string) (entity.Sentiment, error)
	Name() string
}

// NewsProviderRepository fetches articles from an external news API.
type NewsProviderRepository interface {
	FetchArticles(ctx context.Context, query dto.ArticleQuery) ([]dto.RawArticle, error)
	Name() string
}

// ChatCompleter sends a single-turn prompt to an LLM and returns its reply text.
// Name identifies the provider and model, e.g. "openai/gpt-3.5-turbo".
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
