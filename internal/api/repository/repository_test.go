package repository

import (
	"testing"
	"time"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/internal/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the schema
// migrated. A single connection keeps every query on the same database.
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

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		News: config.News{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Timeout: 5 * time.Second,
		},
		Sentiment: config.Sentiment{Timeout: 5 * time.Second},
		HuggingFace: config.HuggingFace{
			BaseURL: baseURL,
			APIKey:  "hf-key",
			Model:   "distilbert-base-uncased-finetuned-sst-2-english",
		},
		LocalModel: config.LocalModel{
			BaseURL: baseURL,
			Model:   "nlptown/bert-base-multilingual-uncased-sentiment",
		},
		OpenAI: config.OpenAI{
			APIKey:  "sk-test",
			Model:   "gpt-3.5-turbo",
			BaseURL: baseURL + "/v1",
		},
	}
}
