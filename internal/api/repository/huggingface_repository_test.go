package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceRepository_Classify(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    entity.Sentiment
		wantErr bool
	}{
		{"nested positive", `[[{"label":"POSITIVE","score":0.98},{"label":"NEGATIVE","score":0.02}]]`, entity.SentimentPositive, false},
		{"flat negative", `[{"label":"POSITIVE","score":0.1},{"label":"NEGATIVE","score":0.9}]`, entity.SentimentNegative, false},
		{"unknown label", `[[{"label":"LABEL_1","score":0.9}]]`, "", true},
		{"empty", `[]`, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/models/distilbert-base-uncased-finetuned-sst-2-english", r.URL.Path)
				assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))

				var req dto.HuggingFaceRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "Stocks soar", req.Inputs)

				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			repo := NewHuggingFaceRepository(testConfig(server.URL), logger.NewNop())
			got, err := repo.Classify(context.Background(), "Stocks soar")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHuggingFaceRepository_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Model is currently loading"}`))
	}))
	defer server.Close()

	repo := NewHuggingFaceRepository(testConfig(server.URL), logger.NewNop())
	_, err := repo.Classify(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Model is currently loading")
}
