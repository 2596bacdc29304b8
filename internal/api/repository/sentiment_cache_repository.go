package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// cachedSentimentRepository memoizes a backend's labels in Redis so that the
// same text is not sent to a paid backend twice. Redis failures only cost a
// cache miss.
type cachedSentimentRepository struct {
	next        SentimentRepository
	redisClient *redis.Client
	ttl         time.Duration
	logger      *logger.Logger
}

// NewCachedSentimentRepository wraps next with a Redis cache.
func NewCachedSentimentRepository(next SentimentRepository, redisClient *redis.Client, ttl time.Duration, log *logger.Logger) SentimentRepository {
	return &cachedSentimentRepository{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
		logger:      log,
	}
}

func (r *cachedSentimentRepository) Name() string {
	return r.next.Name()
}

func (r *cachedSentimentRepository) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	key := r.cacheKey(text)

	cached, err := r.redisClient.Get(ctx, key).Result()
	switch {
	case err == nil:
		if s, ok := entity.ParseSentiment(cached); ok {
			return s, nil
		}
		r.logger.Warn("Discarding invalid cached sentiment", logger.StringField("key", key), logger.StringField("value", cached))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("Failed to read sentiment cache", logger.ErrorField(err))
	}

	sentiment, err := r.next.Classify(ctx, text)
	if err != nil {
		return "", err
	}

	if err := r.redisClient.Set(ctx, key, string(sentiment), r.ttl).Err(); err != nil {
		r.logger.Warn("Failed to write sentiment cache", logger.ErrorField(err))
	}
	return sentiment, nil
}

func (r *cachedSentimentRepository) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(r.next.Name() + "|" + text))
	return common.SentimentCacheKeyPrefix + hex.EncodeToString(sum[:])
}
