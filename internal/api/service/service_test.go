package service

import (
	"context"
	"sync"
	"testing"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.UserProfile{},
		&entity.NewsArticle{},
		&entity.SentimentLog{},
	))
	return db
}

type mockNewsProvider struct {
	mock.Mock
}

func (m *mockNewsProvider) FetchArticles(ctx context.Context, query dto.ArticleQuery) ([]dto.RawArticle, error) {
	args := m.Called(ctx, query)
	articles, _ := args.Get(0).([]dto.RawArticle)
	return articles, args.Error(1)
}

func (m *mockNewsProvider) Name() string {
	return "newsdata"
}

type mockSentimentBackend struct {
	mock.Mock
}

func (m *mockSentimentBackend) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(entity.Sentiment), args.Error(1)
}

func (m *mockSentimentBackend) Name() string {
	return "mock"
}

// stubClassifier labels text from a fixed table and counts calls.
type stubClassifier struct {
	mu     sync.Mutex
	labels map[string]entity.Sentiment
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) entity.Sentiment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if label, ok := s.labels[text]; ok {
		return label
	}
	return entity.SentimentNeutral
}

func strPtr(s string) *string {
	return &s
}
