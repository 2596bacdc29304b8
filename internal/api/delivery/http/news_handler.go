package http

import (
	"net/http"

	"github.com/strongDoorknob/moodsy/internal/api/service"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler handles HTTP requests for news and sentiment.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/news", h.GetNews)
	g.GET("/sentiment", h.GetSentimentNews)
	g.GET("/stored", h.GetStoredNews)
}

// GetNews godoc
// @Summary Raw news
// @Description Fetch articles from the news provider without classifying or storing them
// @Tags news
// @Produce  json
// @Param   country   query  string  false  "ISO country code"
// @Param   language  query  string  false  "Language code"
// @Success 200 {array} dto.RawArticle
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /news [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	articles, err := h.newsService.FetchRaw(c.Request().Context(), c.QueryParam("country"), c.QueryParam("language"))
	if err != nil {
		return respondError(c, h.logger, keyError, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// GetSentimentNews godoc
// @Summary News with sentiment
// @Description Fetch, classify and store articles for a country
// @Tags news
// @Produce  json
// @Param   country  query  string  true  "ISO country code"
// @Success 200 {object} dto.SentimentNewsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sentiment [get]
func (h *NewsHandler) GetSentimentNews(c echo.Context) error {
	resp, err := h.newsService.IngestWithSentiment(c.Request().Context(), c.QueryParam("country"))
	if err != nil {
		return respondError(c, h.logger, keyError, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetStoredNews godoc
// @Summary Stored news
// @Description List the latest stored articles
// @Tags news
// @Produce  json
// @Param   country   query  string  false  "ISO country code"
// @Param   language  query  string  false  "Language code"
// @Success 200 {object} dto.StoredNewsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stored [get]
func (h *NewsHandler) GetStoredNews(c echo.Context) error {
	resp, err := h.newsService.ListStored(c.Request().Context(), c.QueryParam("country"), c.QueryParam("language"))
	if err != nil {
		return respondError(c, h.logger, keyError, err)
	}
	return c.JSON(http.StatusOK, resp)
}
