package repository

import "fmt"

func BuildSentimentPrompt(text string) string {
	return fmt.Sprintf(`Classify the sentiment of this news article as Positive, Neutral, or Negative:

"%s"

Sentiment:`, text)
}
