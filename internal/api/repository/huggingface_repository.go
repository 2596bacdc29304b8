package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"
)

// huggingFaceRepository classifies text with a hosted binary (positive /
// negative) model on the Hugging Face inference API.
type huggingFaceRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewHuggingFaceRepository creates a new instance of huggingFaceRepository.
func NewHuggingFaceRepository(cfg *config.Config, log *logger.Logger) SentimentRepository {
	return &huggingFaceRepository{
		client: &http.Client{Timeout: cfg.Sentiment.Timeout},
		cfg:    cfg,
		logger: log,
	}
}

func (r *huggingFaceRepository) Name() string {
	return common.SentimentProviderHuggingFace
}

// Classify returns the model's top label. The model never emits neutral.
func (r *huggingFaceRepository) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	labels, err := postInference(ctx, r.client, r.modelURL(), r.cfg.HuggingFace.APIKey, text)
	if err != nil {
		return "", err
	}

	top, err := topLabel(labels)
	if err != nil {
		return "", err
	}

	switch label := strings.ToLower(top.Label); label {
	case string(entity.SentimentPositive):
		return entity.SentimentPositive, nil
	case string(entity.SentimentNegative):
		return entity.SentimentNegative, nil
	default:
		return "", fmt.Errorf("unexpected label from hugging face model: %q", top.Label)
	}
}

func (r *huggingFaceRepository) modelURL() string {
	return fmt.Sprintf("%s/models/%s", strings.TrimRight(r.cfg.HuggingFace.BaseURL, "/"), r.cfg.HuggingFace.Model)
}

// postInference sends {"inputs": text} to a text classification endpoint and
// decodes either a flat or a nested list of label/score pairs.
func postInference(ctx context.Context, client *http.Client, url, apiKey, text string) ([]dto.HuggingFaceLabel, error) {
	jsonPayload, err := json.Marshal(dto.HuggingFaceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.HuggingFaceError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("received non-OK response from inference API: %d - %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("received non-OK response from inference API: %d - %s", resp.StatusCode, string(body))
	}

	var nested [][]dto.HuggingFaceLabel
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, fmt.Errorf("empty inference response")
		}
		return nested[0], nil
	}

	var flat []dto.HuggingFaceLabel
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}
	return flat, nil
}

func topLabel(labels []dto.HuggingFaceLabel) (dto.HuggingFaceLabel, error) {
	if len(labels) == 0 {
		return dto.HuggingFaceLabel{}, fmt.Errorf("no labels in inference response")
	}
	top := labels[0]
	for _, l := range labels[1:] {
		if l.Score > top.Score {
			top = l
		}
	}
	return top, nil
}
