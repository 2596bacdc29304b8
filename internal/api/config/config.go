package config

import (
	"time"

	"github.com/strongDoorknob/moodsy/pkg/config"
)

// Auth holds token signing configuration.
type Auth struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
}

// News holds the news provider configuration.
type News struct {
	Provider          string        `mapstructure:"provider"`
	BaseURL           string        `mapstructure:"base_url"`
	APIKey            string        `mapstructure:"api_key"`
	Timeout           time.Duration `mapstructure:"timeout"`
	SentimentPageSize int           `mapstructure:"sentiment_page_size"`
	RawPageSize       int           `mapstructure:"raw_page_size"`
	RawCacheTTL       time.Duration `mapstructure:"raw_cache_ttl"`
}

// Sentiment selects the classifier backend.
type Sentiment struct {
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// HuggingFace holds the configuration for the hosted inference API.
type HuggingFace struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// LocalModel points at the self-hosted star rating model server.
type LocalModel struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// LLM selects the chat completion provider.
type LLM struct {
	Provider string `mapstructure:"provider"`
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App         config.App      `mapstructure:"app"`
	Logger      config.Logger   `mapstructure:"logger"`
	Database    config.Database `mapstructure:"database"`
	Redis       config.Redis    `mapstructure:"redis"`
	API         config.API      `mapstructure:"api"`
	Auth        Auth            `mapstructure:"auth"`
	News        News            `mapstructure:"news"`
	Sentiment   Sentiment       `mapstructure:"sentiment"`
	HuggingFace HuggingFace     `mapstructure:"huggingface"`
	LocalModel  LocalModel      `mapstructure:"local_model"`
	LLM         LLM             `mapstructure:"llm"`
	OpenAI      OpenAI          `mapstructure:"openai"`
	Gemini      Gemini          `mapstructure:"gemini"`
}

var defaults = map[string]interface{}{
	"app.name":                 "moodsy-api",
	"app.env":                  "development",
	"logger.level":             "info",
	"logger.encoding":          "json",
	"database.host":            "localhost",
	"database.port":            5432,
	"database.user":            "moodsy",
	"database.password":        "",
	"database.name":            "moodsy",
	"database.ssl_mode":        "disable",
	"database.max_idle_conns":  5,
	"database.max_open_conns":  20,
	"redis.enabled":            false,
	"redis.host":               "localhost",
	"redis.port":               6379,
	"redis.password":           "",
	"redis.db":                 0,
	"redis.pool_size":          10,
	"api.port":                 8000,
	"auth.jwt_secret":          "",
	"auth.access_ttl":          "5m",
	"auth.refresh_ttl":         "24h",
	"news.provider":            "newsdata",
	"news.base_url":            "https://newsdata.io",
	"news.api_key":             "",
	"news.timeout":             "10s",
	"news.sentiment_page_size": 3,
	"news.raw_page_size":       3,
	"news.raw_cache_ttl":       "2m",
	"sentiment.provider":       "huggingface",
	"sentiment.timeout":        "10s",
	"sentiment.cache_ttl":      "24h",
	"huggingface.base_url":     "https://api-inference.huggingface.co",
	"huggingface.api_key":      "",
	"huggingface.model":        "distilbert-base-uncased-finetuned-sst-2-english",
	"local_model.base_url":     "http://localhost:8080",
	"local_model.model":        "nlptown/bert-base-multilingual-uncased-sentiment",
	"llm.provider":             "openai",
	"openai.api_key":           "",
	"openai.model":             "gpt-3.5-turbo",
	"openai.base_url":          "",
	"gemini.api_key":           "",
	"gemini.model":             "gemini-2.0-flash",
}

// Load loads the API configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
