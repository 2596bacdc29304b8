package repository

import (
	"context"

	"github.com/strongDoorknob/moodsy/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SentimentLogRepository interface {
	Create(ctx context.Context, log *entity.SentimentLog) error
	FindByUserID(ctx context.Context, userID uint) ([]entity.SentimentLog, error)
}

func NewSentimentLogRepository(db *gorm.DB) SentimentLogRepository {
	return &sentimentLogRepository{db: db}
}

type sentimentLogRepository struct {
	db *gorm.DB
}

func (r *sentimentLogRepository) Create(ctx context.Context, log *entity.SentimentLog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(log).Error
}

func (r *sentimentLogRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.SentimentLog, error) {
	var logs []entity.SentimentLog
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
