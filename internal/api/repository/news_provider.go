package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/pkg/apperror"
)

const errMissingCountryOrLanguage = "Country or language code is required"

// searchTerm returns the term a keyword-based provider should search for.
// Country wins over language.
func searchTerm(query dto.ArticleQuery) (string, error) {
	switch {
	case query.Country != "":
		if query.Query != "" {
			return query.Query, nil
		}
		return query.Country, nil
	case query.Language != "":
		return query.Language, nil
	default:
		return "", apperror.InvalidRequest(errMissingCountryOrLanguage)
	}
}

// getBody performs a GET and returns status and body. Network failures are
// reported as transport errors.
func getBody(ctx context.Context, client *http.Client, url string, headers map[string]string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, apperror.Transport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, apperror.Transport(err)
	}
	return resp.StatusCode, body, nil
}

func isSuccessStatus(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// providerFailure reports a non-success provider answer. When the body
// carried no message the HTTP status text is used instead.
func providerFailure(provider string, status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return apperror.Provider(status, fmt.Sprintf("%s request failed: %s", provider, message))
}

func capArticles(articles []dto.RawArticle, limit int) []dto.RawArticle {
	if limit > 0 && len(articles) > limit {
		return articles[:limit]
	}
	return articles
}
