package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"
)

// newsDataRepository reads the NewsData.io "latest" endpoint, searching by keyword.
type newsDataRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewNewsDataRepository creates a new instance of newsDataRepository.
func NewNewsDataRepository(cfg *config.Config, log *logger.Logger) NewsProviderRepository {
	return &newsDataRepository{
		client: &http.Client{Timeout: cfg.News.Timeout},
		cfg:    cfg,
		logger: log,
	}
}

func (r *newsDataRepository) Name() string {
	return common.NewsProviderNewsData
}

func (r *newsDataRepository) FetchArticles(ctx context.Context, query dto.ArticleQuery) ([]dto.RawArticle, error) {
	term, err := searchTerm(query)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("apikey", r.cfg.News.APIKey)
	params.Set("q", term)
	apiURL := fmt.Sprintf("%s/api/1/latest?%s", strings.TrimRight(r.cfg.News.BaseURL, "/"), params.Encode())

	r.logger.Debug("Requesting NewsData.io", logger.StringField("q", term))

	status, body, err := getBody(ctx, r.client, apiURL, nil)
	if err != nil {
		r.logger.Error("Failed to reach NewsData.io", logger.ErrorField(err), logger.StringField("q", term))
		return nil, err
	}

	var resp dto.NewsDataResponse
	decodeErr := json.Unmarshal(body, &resp)
	if !isSuccessStatus(status) || (decodeErr == nil && resp.Status != "success") {
		var apiErr dto.NewsDataError
		if decodeErr == nil {
			_ = json.Unmarshal(resp.Results, &apiErr)
		}
		r.logger.Warn("NewsData.io request failed", logger.IntField("status_code", status), logger.StringField("message", apiErr.Message))
		return nil, providerFailure("NewsData API", status, apiErr.Message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode NewsData.io response: %w", decodeErr)
	}

	var items []dto.NewsDataArticle
	if len(resp.Results) > 0 {
		if err := json.Unmarshal(resp.Results, &items); err != nil {
			return nil, fmt.Errorf("failed to decode NewsData.io results: %w", err)
		}
	}

	var raw []json.RawMessage
	_ = json.Unmarshal(resp.Results, &raw)

	articles := make([]dto.RawArticle, 0, len(items))
	for i, item := range items {
		article := dto.RawArticle{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			ImageURL:    item.ImageURL,
			PublishedAt: item.PubDate,
			Language:    item.Language,
		}
		if i < len(raw) {
			article.Payload = raw[i]
		}
		articles = append(articles, article)
	}

	return capArticles(articles, query.Limit), nil
}
