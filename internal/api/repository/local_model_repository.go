package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"
)

// LocalModelRepository classifies text with a 1-5 star rating model served
// next to the API. Load must succeed before Classify is used.
type LocalModelRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
	loaded atomic.Bool
}

// NewLocalModelRepository creates a new instance of LocalModelRepository.
func NewLocalModelRepository(cfg *config.Config, log *logger.Logger) *LocalModelRepository {
	return &LocalModelRepository{
		client: &http.Client{Timeout: cfg.Sentiment.Timeout},
		cfg:    cfg,
		logger: log,
	}
}

func (r *LocalModelRepository) Name() string {
	return common.SentimentProviderLocal
}

// Load checks that the model server is up and serving the configured model.
// It is called once at startup; the process must not start if it fails.
func (r *LocalModelRepository) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL()+"/info", nil)
	if err != nil {
		return fmt.Errorf("failed to create new http request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach local model server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("local model server not ready: status %d", resp.StatusCode)
	}

	var info dto.LocalModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return fmt.Errorf("failed to decode model info: %w", err)
	}
	if info.ModelID != r.cfg.LocalModel.Model {
		return fmt.Errorf("local model server serves %q, expected %q", info.ModelID, r.cfg.LocalModel.Model)
	}

	r.loaded.Store(true)
	r.logger.Info("Local sentiment model loaded", logger.StringField("model", info.ModelID))
	return nil
}

// Classify rates text from 1 to 5 stars and buckets the rating.
func (r *LocalModelRepository) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	if !r.loaded.Load() {
		return "", fmt.Errorf("local model not loaded")
	}

	labels, err := postInference(ctx, r.client, r.baseURL()+"/predict", "", text)
	if err != nil {
		return "", err
	}

	top, err := topLabel(labels)
	if err != nil {
		return "", err
	}

	stars, err := parseStars(top.Label)
	if err != nil {
		return "", err
	}
	return BucketStars(stars)
}

func (r *LocalModelRepository) baseURL() string {
	return strings.TrimRight(r.cfg.LocalModel.BaseURL, "/")
}

// BucketStars maps a star rating to a label: 1-2 negative, 3 neutral, 4-5 positive.
func BucketStars(stars int) (entity.Sentiment, error) {
	switch {
	case stars < 1 || stars > 5:
		return "", fmt.Errorf("star rating out of range: %d", stars)
	case stars <= 2:
		return entity.SentimentNegative, nil
	case stars == 3:
		return entity.SentimentNeutral, nil
	default:
		return entity.SentimentPositive, nil
	}
}

// parseStars reads labels like "4 stars" or "1 star".
func parseStars(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty star label")
	}
	stars, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("invalid star label %q: %w", label, err)
	}
	return stars, nil
}
