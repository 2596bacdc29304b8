package entity

import "time"

// SentimentLog is one mood reaction submitted by a user. Append-only.
type SentimentLog struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user"`
	CountryCode        string    `gorm:"type:varchar(10);not null" json:"country_code"`
	ArticleTitle       string    `gorm:"type:text;not null" json:"article_title"`
	ArticleDescription *string   `gorm:"type:text" json:"article_description"`
	ArticleURL         string    `gorm:"not null" json:"article_url"`
	Sentiment          Sentiment `gorm:"type:varchar(10);not null" json:"sentiment"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	User               *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SentimentLog) TableName() string {
	return "sentiment_logs"
}
