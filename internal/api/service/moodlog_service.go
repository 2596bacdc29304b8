package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/api/repository"
	"github.com/strongDoorknob/moodsy/internal/entity"
	"github.com/strongDoorknob/moodsy/pkg/apperror"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/samber/lo"
)

const (
	msgFieldRequired = "This field is required."
	msgInvalidURL    = "Enter a valid URL."
	maxCountryCode   = 10
)

// MoodLogService records the sentiment reactions of authenticated users.
type MoodLogService interface {
	Append(ctx context.Context, userID uint, req *dto.CreateSentimentLogRequest) (*dto.SentimentLogResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]*dto.SentimentLogResponse, error)
}

// NewMoodLogService creates a new MoodLogService.
func NewMoodLogService(logRepo repository.SentimentLogRepository, log *logger.Logger) MoodLogService {
	return &moodLogService{
		logRepo: logRepo,
		logger:  log,
	}
}

type moodLogService struct {
	logRepo repository.SentimentLogRepository
	logger  *logger.Logger
}

// Append validates req and stores it for userID. The owner always comes
// from the authenticated caller.
func (s *moodLogService) Append(ctx context.Context, userID uint, req *dto.CreateSentimentLogRequest) (*dto.SentimentLogResponse, error) {
	sentiment, fields := validateSentimentLog(req)
	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	record := &entity.SentimentLog{
		UserID:             userID,
		CountryCode:        strings.TrimSpace(req.CountryCode),
		ArticleTitle:       strings.TrimSpace(req.ArticleTitle),
		ArticleDescription: req.ArticleDescription,
		ArticleURL:         strings.TrimSpace(req.ArticleURL),
		Sentiment:          sentiment,
	}
	if err := s.logRepo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to store mood log", logger.ErrorField(err), logger.Field("user_id", userID))
		return nil, fmt.Errorf("failed to store mood log: %w", err)
	}

	return dto.NewSentimentLogResponse(record), nil
}

func (s *moodLogService) ListByUser(ctx context.Context, userID uint) ([]*dto.SentimentLogResponse, error) {
	logs, err := s.logRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood logs: %w", err)
	}
	return lo.Map(logs, func(l entity.SentimentLog, _ int) *dto.SentimentLogResponse {
		return dto.NewSentimentLogResponse(&l)
	}), nil
}

func validateSentimentLog(req *dto.CreateSentimentLogRequest) (entity.Sentiment, map[string]string) {
	fields := map[string]string{}

	countryCode := strings.TrimSpace(req.CountryCode)
	switch {
	case countryCode == "":
		fields["country_code"] = msgFieldRequired
	case utf8.RuneCountInString(countryCode) > maxCountryCode:
		fields["country_code"] = fmt.Sprintf("Ensure this field has no more than %d characters.", maxCountryCode)
	}

	if strings.TrimSpace(req.ArticleTitle) == "" {
		fields["article_title"] = msgFieldRequired
	}

	articleURL := strings.TrimSpace(req.ArticleURL)
	switch {
	case articleURL == "":
		fields["article_url"] = msgFieldRequired
	case !isAbsoluteHTTPURL(articleURL):
		fields["article_url"] = msgInvalidURL
	}

	var sentiment entity.Sentiment
	if strings.TrimSpace(req.Sentiment) == "" {
		fields["sentiment"] = msgFieldRequired
	} else {
		// Labels are stored lowercase; the choice match is exact.
		sentiment = entity.Sentiment(req.Sentiment)
		if !sentiment.Valid() {
			fields["sentiment"] = fmt.Sprintf("%q is not a valid choice.", req.Sentiment)
		}
	}

	return sentiment, fields
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
