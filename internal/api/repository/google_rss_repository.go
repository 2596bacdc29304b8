package repository

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/pkg/apperror"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// googleRSSRepository searches the Google News RSS feed. It needs no API key.
type googleRSSRepository struct {
	client *http.Client
	parser *gofeed.Parser
	cfg    *config.Config
	logger *logger.Logger
}

// NewGoogleRSSRepository creates a new instance of googleRSSRepository.
func NewGoogleRSSRepository(cfg *config.Config, log *logger.Logger) NewsProviderRepository {
	return &googleRSSRepository{
		client: &http.Client{Timeout: cfg.News.Timeout},
		parser: gofeed.NewParser(),
		cfg:    cfg,
		logger: log,
	}
}

func (r *googleRSSRepository) Name() string {
	return common.NewsProviderGoogleRSS
}

func (r *googleRSSRepository) FetchArticles(ctx context.Context, query dto.ArticleQuery) ([]dto.RawArticle, error) {
	term, err := searchTerm(query)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", term)
	if query.Language != "" {
		params.Set("hl", query.Language)
	} else {
		params.Set("hl", "en")
	}
	feedURL := fmt.Sprintf("%s/rss/search?%s", strings.TrimRight(r.cfg.News.BaseURL, "/"), params.Encode())

	r.logger.Info("Processing RSS feed", logger.StringField("url", feedURL))

	status, body, err := getBody(ctx, r.client, feedURL, map[string]string{
		"User-Agent": "Mozilla/5.0 (compatible; moodsy/1.0)",
		"Accept":     "application/rss+xml,application/xml;q=0.9,*/*;q=0.8",
	})
	if err != nil {
		r.logger.Error("Failed to fetch RSS feed", logger.ErrorField(err), logger.StringField("q", term))
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apperror.Provider(status, fmt.Sprintf("Google News RSS request failed: %s", http.StatusText(status)))
	}

	feed, err := r.parser.Parse(bytes.NewReader(body))
	if err != nil {
		r.logger.Error("Failed to parse RSS feed", logger.ErrorField(err), logger.StringField("q", term))
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	language := query.Language
	if language == "" {
		language = feed.Language
	}

	articles := make([]dto.RawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Link == "" {
			continue
		}
		articles = append(articles, dto.RawArticle{
			Title:       strings.TrimSpace(item.Title),
			Description: htmlToText(item.Description),
			URL:         item.Link,
			ImageURL:    itemImage(item),
			PublishedAt: item.Published,
			Language:    language,
		})
	}

	return capArticles(articles, query.Limit), nil
}

// htmlToText flattens an HTML snippet to its text. Empty results become nil.
func htmlToText(fragment string) *string {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return &fragment
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	if text == "" {
		return nil
	}
	return &text
}

func itemImage(item *gofeed.Item) *string {
	if item.Image != nil && item.Image.URL != "" {
		return &item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return &enc.URL
		}
	}
	return nil
}
