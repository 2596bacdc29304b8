package entity

import "strings"

// Sentiment is the discretized outcome of classification. Only these three
// labels are ever persisted.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is one of the three labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// ParseSentiment normalizes a label case-insensitively.
func ParseSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}
