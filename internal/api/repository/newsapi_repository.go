package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/pkg/apperror"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/samber/lo"
)

// newsAPIRepository reads NewsAPI.org top headlines by ISO country or language.
type newsAPIRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewNewsAPIRepository creates a new instance of newsAPIRepository.
func NewNewsAPIRepository(cfg *config.Config, log *logger.Logger) NewsProviderRepository {
	return &newsAPIRepository{
		client: &http.Client{Timeout: cfg.News.Timeout},
		cfg:    cfg,
		logger: log,
	}
}

func (r *newsAPIRepository) Name() string {
	return common.NewsProviderNewsAPI
}

func (r *newsAPIRepository) FetchArticles(ctx context.Context, query dto.ArticleQuery) ([]dto.RawArticle, error) {
	params := url.Values{}
	switch {
	case query.Country != "":
		params.Set("country", query.Country)
	case query.Language != "":
		params.Set("language", query.Language)
	default:
		return nil, apperror.InvalidRequest(errMissingCountryOrLanguage)
	}
	if query.Limit > 0 {
		params.Set("pageSize", strconv.Itoa(query.Limit))
	}
	apiURL := fmt.Sprintf("%s/v2/top-headlines?%s", strings.TrimRight(r.cfg.News.BaseURL, "/"), params.Encode())

	status, body, err := getBody(ctx, r.client, apiURL, map[string]string{"X-Api-Key": r.cfg.News.APIKey})
	if err != nil {
		r.logger.Error("Failed to reach NewsAPI", logger.ErrorField(err))
		return nil, err
	}

	var resp dto.NewsAPIResponse
	decodeErr := json.Unmarshal(body, &resp)
	if !isSuccessStatus(status) || (decodeErr == nil && resp.Status == "error") {
		r.logger.Warn("NewsAPI request failed", logger.IntField("status_code", status), logger.StringField("message", resp.Message))
		return nil, providerFailure("NewsAPI", status, resp.Message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode NewsAPI response: %w", decodeErr)
	}

	articles := lo.Map(resp.Articles, func(a dto.NewsAPIArticle, _ int) dto.RawArticle {
		return dto.RawArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			Language:    query.Language,
		}
	})

	return capArticles(articles, query.Limit), nil
}
