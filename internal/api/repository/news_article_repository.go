package repository

import (
	"context"

	"github.com/strongDoorknob/moodsy/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsArticleFilter narrows stored article listings. Empty fields are ignored.
type NewsArticleFilter struct {
	Country  string
	Language string
}

// NewsArticleRepository defines the interface for interacting with ingested articles.
type NewsArticleRepository interface {
	GetOrCreate(ctx context.Context, article *entity.NewsArticle) (*entity.NewsArticle, bool, error)
	FindLatest(ctx context.Context, filter NewsArticleFilter, limit int) ([]entity.NewsArticle, error)
}

// NewNewsArticleRepository creates a new instance of NewsArticleRepository.
func NewNewsArticleRepository(db *gorm.DB) NewsArticleRepository {
	return &newsArticleRepository{db: db}
}

type newsArticleRepository struct {
	db *gorm.DB
}

// GetOrCreate inserts article unless a row with the same URL exists, then
// returns the stored row. The boolean reports whether this call created it.
// The insert is conflict tolerant so concurrent calls for one URL are safe.
func (r *newsArticleRepository) GetOrCreate(ctx context.Context, article *entity.NewsArticle) (*entity.NewsArticle, bool, error) {
	db := r.db.WithContext(ctx)

	tx := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoNothing: true,
	}).Create(article)
	if tx.Error != nil {
		return nil, false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return article, true, nil
	}

	var existing entity.NewsArticle
	if err := db.Where("url = ?", article.URL).First(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

// FindLatest returns up to limit articles, newest first. Rows without a
// publish time sort last.
func (r *newsArticleRepository) FindLatest(ctx context.Context, filter NewsArticleFilter, limit int) ([]entity.NewsArticle, error) {
	q := r.db.WithContext(ctx).Model(&entity.NewsArticle{})
	if filter.Country != "" {
		q = q.Where("country = ?", filter.Country)
	}
	if filter.Language != "" {
		q = q.Where("language = ?", filter.Language)
	}

	var articles []entity.NewsArticle
	err := q.Order("published_at DESC NULLS LAST").Order("id DESC").Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}
