package dto

import (
	"encoding/json"
	"time"

	"github.com/strongDoorknob/moodsy/internal/entity"
)

// ArticleQuery selects articles from a news provider. Country wins over
// Language when both are set. Query is the resolved search term for
// keyword-based providers.
type ArticleQuery struct {
	Country  string
	Language string
	Query    string
	Limit    int
}

// RawArticle is a provider article normalized to one shape. PublishedAt is
// the provider's timestamp string, not yet parsed. Language and Payload are
// kept for storage only.
type RawArticle struct {
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	URL         string          `json:"url"`
	ImageURL    *string         `json:"imageUrl"`
	PublishedAt string          `json:"publishedAt"`
	Language    string          `json:"-"`
	Payload     json.RawMessage `json:"-"`
}

// EnrichedArticle is an article carrying its sentiment label.
type EnrichedArticle struct {
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	URL         string           `json:"url"`
	ImageURL    *string          `json:"imageUrl"`
	PublishedAt *time.Time       `json:"publishedAt"`
	Sentiment   entity.Sentiment `json:"sentiment"`
}

// SentimentNewsResponse is returned by the sentiment endpoint.
type SentimentNewsResponse struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Results      []EnrichedArticle `json:"results"`
}

// StoredNewsResponse is returned by the stored endpoint.
type StoredNewsResponse struct {
	Results []EnrichedArticle `json:"results"`
}

// NewEnrichedArticle maps a stored article to its API shape.
func NewEnrichedArticle(a entity.NewsArticle) EnrichedArticle {
	return EnrichedArticle{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedAt,
		Sentiment:   a.Sentiment,
	}
}
