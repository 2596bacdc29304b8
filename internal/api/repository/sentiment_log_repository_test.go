package repository

import (
	"context"
	"testing"

	"github.com/strongDoorknob/moodsy/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentLogRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewSentimentLogRepository(db)
	ctx := context.Background()

	ana := &entity.User{Email: "ana@example.com", PasswordHash: "hash"}
	bob := &entity.User{Email: "bob@example.com", PasswordHash: "hash"}
	require.NoError(t, users.CreateWithProfile(ctx, ana))
	require.NoError(t, users.CreateWithProfile(ctx, bob))

	for _, s := range []entity.Sentiment{entity.SentimentPositive, entity.SentimentNegative} {
		require.NoError(t, repo.Create(ctx, &entity.SentimentLog{
			UserID:       ana.ID,
			CountryCode:  "us",
			ArticleTitle: "Story",
			ArticleURL:   "https://example.com/story",
			Sentiment:    s,
		}))
	}
	// Same article logged again by another user is allowed.
	require.NoError(t, repo.Create(ctx, &entity.SentimentLog{
		UserID:       bob.ID,
		CountryCode:  "us",
		ArticleTitle: "Story",
		ArticleURL:   "https://example.com/story",
		Sentiment:    entity.SentimentNeutral,
	}))

	logs, err := repo.FindByUserID(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		assert.Equal(t, ana.ID, l.UserID)
		assert.False(t, l.CreatedAt.IsZero())
	}
	assert.Equal(t, entity.SentimentNegative, logs[0].Sentiment)

	logs, err = repo.FindByUserID(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}
