package dto

import (
	"time"

	"github.com/strongDoorknob/moodsy/internal/entity"
)

// CreateSentimentLogRequest is the body of a mood log submission. Any user
// field sent by the client is not bound.
type CreateSentimentLogRequest struct {
	CountryCode        string  `json:"country_code"`
	ArticleTitle       string  `json:"article_title"`
	ArticleDescription *string `json:"article_description"`
	ArticleURL         string  `json:"article_url"`
	Sentiment          string  `json:"sentiment"`
}

// SentimentLogResponse is the created record.
type SentimentLogResponse struct {
	ID                 uint             `json:"id"`
	User               uint             `json:"user"`
	CountryCode        string           `json:"country_code"`
	ArticleTitle       string           `json:"article_title"`
	ArticleDescription *string          `json:"article_description"`
	ArticleURL         string           `json:"article_url"`
	Sentiment          entity.Sentiment `json:"sentiment"`
	CreatedAt          time.Time        `json:"created_at"`
}

// NewSentimentLogResponse maps a stored log to its API shape.
func NewSentimentLogResponse(l *entity.SentimentLog) *SentimentLogResponse {
	return &SentimentLogResponse{
		ID:                 l.ID,
		User:               l.UserID,
		CountryCode:        l.CountryCode,
		ArticleTitle:       l.ArticleTitle,
		ArticleDescription: l.ArticleDescription,
		ArticleURL:         l.ArticleURL,
		Sentiment:          l.Sentiment,
		CreatedAt:          l.CreatedAt,
	}
}
