package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketStars(t *testing.T) {
	cases := map[int]entity.Sentiment{
		1: entity.SentimentNegative,
		2: entity.SentimentNegative,
		3: entity.SentimentNeutral,
		4: entity.SentimentPositive,
		5: entity.SentimentPositive,
	}
	for stars, want := range cases {
		got, err := BucketStars(stars)
		require.NoError(t, err)
		assert.Equal(t, want, got, "stars=%d", stars)
	}

	for _, stars := range []int{0, 6, -1} {
		_, err := BucketStars(stars)
		assert.Error(t, err, "stars=%d", stars)
	}
}

func newLocalModelServer(t *testing.T, modelID, prediction string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/info":
			_, _ = w.Write([]byte(`{"model_id":"` + modelID + `"}`))
		case "/predict":
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(prediction))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestLocalModelRepository_LoadAndClassify(t *testing.T) {
	server := newLocalModelServer(t, "nlptown/bert-base-multilingual-uncased-sentiment",
		`[{"label":"1 star","score":0.05},{"label":"4 stars","score":0.7},{"label":"5 stars","score":0.25}]`)
	defer server.Close()

	repo := NewLocalModelRepository(testConfig(server.URL), logger.NewNop())

	_, err := repo.Classify(context.Background(), "before load")
	assert.Error(t, err)

	require.NoError(t, repo.Load(context.Background()))
	got, err := repo.Classify(context.Background(), "Great day")
	require.NoError(t, err)
	assert.Equal(t, entity.SentimentPositive, got)
}

func TestLocalModelRepository_LoadWrongModel(t *testing.T) {
	server := newLocalModelServer(t, "some/other-model", `[]`)
	defer server.Close()

	repo := NewLocalModelRepository(testConfig(server.URL), logger.NewNop())
	assert.Error(t, repo.Load(context.Background()))
}

func TestLocalModelRepository_LoadUnreachable(t *testing.T) {
	server := newLocalModelServer(t, "x", `[]`)
	url := server.URL
	server.Close()

	repo := NewLocalModelRepository(testConfig(url), logger.NewNop())
	assert.Error(t, repo.Load(context.Background()))
}

func TestParseStars(t *testing.T) {
	stars, err := parseStars("3 stars")
	require.NoError(t, err)
	assert.Equal(t, 3, stars)

	stars, err = parseStars("1 star")
	require.NoError(t, err)
	assert.Equal(t, 1, stars)

	_, err = parseStars("")
	assert.Error(t, err)
	_, err = parseStars("LABEL_2")
	assert.Error(t, err)
}
