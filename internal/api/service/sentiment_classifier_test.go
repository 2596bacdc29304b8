package service

import (
	"context"
	"errors"
	"testing"

	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSentimentClassifier_Classify(t *testing.T) {
	backend := new(mockSentimentBackend)
	backend.On("Classify", mock.Anything, "good news").Return(entity.SentimentPositive, nil)
	backend.On("Classify", mock.Anything, "backend down").Return(entity.Sentiment(""), errors.New("503"))
	backend.On("Classify", mock.Anything, "weird label").Return(entity.Sentiment("ecstatic"), nil)

	classifier := NewSentimentClassifier(backend, logger.NewNop())
	ctx := context.Background()

	assert.Equal(t, entity.SentimentPositive, classifier.Classify(ctx, "good news"))
	assert.Equal(t, entity.SentimentNeutral, classifier.Classify(ctx, "backend down"))
	assert.Equal(t, entity.SentimentNeutral, classifier.Classify(ctx, "weird label"))
}

func TestSentimentClassifier_EmptyTextSkipsBackend(t *testing.T) {
	backend := new(mockSentimentBackend)
	classifier := NewSentimentClassifier(backend, logger.NewNop())

	assert.Equal(t, entity.SentimentNeutral, classifier.Classify(context.Background(), ""))
	assert.Equal(t, entity.SentimentNeutral, classifier.Classify(context.Background(), "   "))
	backend.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}
