package entity

import (
	"time"

	"gorm.io/datatypes"
)

// NewsArticle is an ingested article. Rows are created once per URL and never
// updated, so the stored sentiment is the first classification.
type NewsArticle struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"type:varchar(512);not null" json:"title"`
	Description     *string        `gorm:"type:text" json:"description"`
	URL             string         `gorm:"uniqueIndex;not null" json:"url"`
	ImageURL        *string        `json:"image_url"`
	PublishedAt     *time.Time     `gorm:"index" json:"published_at"`
	Sentiment       Sentiment      `gorm:"type:varchar(10);not null" json:"sentiment"`
	Country         *string        `gorm:"type:varchar(10);index" json:"country"`
	Language        *string        `gorm:"type:varchar(32);index" json:"language"`
	Provider        string         `gorm:"type:varchar(32)" json:"provider"`
	ProviderPayload datatypes.JSON `json:"-"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the NewsArticle model.
func (NewsArticle) TableName() string {
	return "news_articles"
}
