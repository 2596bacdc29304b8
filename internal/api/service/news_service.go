package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/api/repository"
	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/apperror"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"
	"github.com/strongDoorknob/moodsy/pkg/utils"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

const (
	errCountryOrLanguageRequired = "Country or language code is required"
	errCountryRequired           = "Country parameter is required"
)

// NewsService is the news ingestion pipeline.
type NewsService interface {
	FetchRaw(ctx context.Context, country, language string) ([]dto.RawArticle, error)
	IngestWithSentiment(ctx context.Context, country string) (*dto.SentimentNewsResponse, error)
	ListStored(ctx context.Context, country, language string) (*dto.StoredNewsResponse, error)
}

// NewNewsService creates a new NewsService.
func NewNewsService(
	cfg *config.Config,
	provider repository.NewsProviderRepository,
	classifier SentimentClassifier,
	articleRepo repository.NewsArticleRepository,
	log *logger.Logger,
) NewsService {
	s := &newsService{
		provider:          provider,
		classifier:        classifier,
		articleRepo:       articleRepo,
		logger:            log.With(logger.StringField("news_provider", provider.Name())),
		sentimentPageSize: cfg.News.SentimentPageSize,
		rawPageSize:       cfg.News.RawPageSize,
	}
	if s.sentimentPageSize <= 0 {
		s.sentimentPageSize = common.SentimentPageSize
	}
	if s.rawPageSize <= 0 {
		s.rawPageSize = common.RawPageSize
	}
	if ttl := cfg.News.RawCacheTTL; ttl > 0 {
		s.rawCache = cache.New(ttl, 2*ttl)
	}
	return s
}

type newsService struct {
	provider          repository.NewsProviderRepository
	classifier        SentimentClassifier
	articleRepo       repository.NewsArticleRepository
	logger            *logger.Logger
	rawCache          *cache.Cache
	sentimentPageSize int
	rawPageSize       int
}

// FetchRaw returns provider articles as-is. Nothing is classified or stored.
func (s *newsService) FetchRaw(ctx context.Context, country, language string) ([]dto.RawArticle, error) {
	country = normalizeCode(country)
	language = normalizeCode(language)
	if country == "" && language == "" {
		return nil, apperror.InvalidRequest(errCountryOrLanguageRequired)
	}

	query := dto.ArticleQuery{Country: country, Language: language, Limit: s.rawPageSize}
	if country != "" {
		query.Query = common.MapCountryToQuery(country)
	}

	cacheKey := fmt.Sprintf("%s|%s|%s|%d", s.provider.Name(), country, language, query.Limit)
	if s.rawCache != nil {
		if cached, ok := s.rawCache.Get(cacheKey); ok {
			return slices.Clone(cached.([]dto.RawArticle)), nil
		}
	}

	articles, err := s.provider.FetchArticles(ctx, query)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []dto.RawArticle{}
	}

	if s.rawCache != nil {
		s.rawCache.SetDefault(cacheKey, slices.Clone(articles))
	}
	return articles, nil
}

// IngestWithSentiment fetches a small page of articles for country, labels
// each one and stores it once per URL. Results keep the provider's order and
// carry the stored label when the URL was seen before.
func (s *newsService) IngestWithSentiment(ctx context.Context, country string) (*dto.SentimentNewsResponse, error) {
	country = normalizeCode(country)
	if country == "" {
		return nil, apperror.InvalidRequest(errCountryRequired)
	}

	rawArticles, err := s.provider.FetchArticles(ctx, dto.ArticleQuery{
		Country: country,
		Query:   common.MapCountryToQuery(country),
		Limit:   s.sentimentPageSize,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Received articles", logger.StringField("country", country), logger.IntField("count", len(rawArticles)))

	results := make([]dto.EnrichedArticle, len(rawArticles))
	completed := make([]bool, len(rawArticles))

	var wg sync.WaitGroup
	for i, raw := range rawArticles {
		wg.Add(1)
		utils.GoSafe(func() {
			defer wg.Done()
			results[i] = s.enrich(ctx, country, raw)
			completed[i] = true
		})
	}
	wg.Wait()

	enriched := make([]dto.EnrichedArticle, 0, len(results))
	for i, article := range results {
		if !completed[i] {
			s.logger.Error("Dropping article that failed to process", logger.StringField("url", rawArticles[i].URL))
			continue
		}
		enriched = append(enriched, article)
	}

	return &dto.SentimentNewsResponse{
		Status:       "success",
		TotalResults: len(enriched),
		Results:      enriched,
	}, nil
}

// enrich classifies one article and persists it with get-or-create
// semantics. Storage failures fall back to the freshly computed article.
func (s *newsService) enrich(ctx context.Context, country string, raw dto.RawArticle) dto.EnrichedArticle {
	text := strings.TrimSpace(raw.Title + " " + lo.FromPtr(raw.Description))
	sentiment := s.classifier.Classify(ctx, text)

	publishedAt, err := utils.ParsePublishedAt(raw.PublishedAt)
	if err != nil {
		s.logger.Warn("Unparseable published date", logger.StringField("url", raw.URL), logger.StringField("published_at", raw.PublishedAt), logger.ErrorField(err))
		publishedAt = nil
	}

	article := entity.NewsArticle{
		Title:           raw.Title,
		Description:     raw.Description,
		URL:             raw.URL,
		ImageURL:        raw.ImageURL,
		PublishedAt:     publishedAt,
		Sentiment:       sentiment,
		Country:         lo.ToPtr(country),
		Provider:        s.provider.Name(),
		ProviderPayload: datatypes.JSON(raw.Payload),
	}
	if language := common.LanguageCode(raw.Language); language != "" {
		article.Language = &language
	}

	if article.URL == "" {
		s.logger.Warn("Article has no URL, not storing it", logger.StringField("title", raw.Title))
		return dto.NewEnrichedArticle(article)
	}

	stored, created, err := s.articleRepo.GetOrCreate(ctx, &article)
	if err != nil {
		s.logger.Error("Failed to store news article", logger.ErrorField(err), logger.StringField("url", article.URL))
		return dto.NewEnrichedArticle(article)
	}

	if !created && stored.Sentiment != sentiment {
		s.logger.Debug("Keeping stored sentiment",
			logger.StringField("url", stored.URL),
			logger.StringField("stored", string(stored.Sentiment)),
			logger.StringField("computed", string(sentiment)),
		)
	}
	return dto.NewEnrichedArticle(*stored)
}

// ListStored returns the newest stored articles. No external calls.
func (s *newsService) ListStored(ctx context.Context, country, language string) (*dto.StoredNewsResponse, error) {
	articles, err := s.articleRepo.FindLatest(ctx, repository.NewsArticleFilter{
		Country:  normalizeCode(country),
		Language: common.LanguageCode(language),
	}, common.StoredNewsLimit)
	if err != nil {
		s.logger.Error("Failed to list stored news", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to list stored news: %w", err)
	}

	return &dto.StoredNewsResponse{
		Results: lo.Map(articles, func(a entity.NewsArticle, _ int) dto.EnrichedArticle {
			return dto.NewEnrichedArticle(a)
		}),
	}, nil
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
