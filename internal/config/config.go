package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Languages maps display labels to the ISO 639-1 codes NewsAPI accepts.
var Languages = map[string]string{
	"English":  "en",
	"Türkçe":   "tr",
	"Deutsch":  "de",
	"Français": "fr",
}

// SortOptions are the sort keys supported by the NewsAPI everything endpoint.
var SortOptions = []string{"relevancy", "popularity", "publishedAt"}

type Config struct {
	NewsAPIKey     string `env:"NEWSAPI_KEY"`
	NewsAPIBaseURL string `env:"NEWSAPI_BASE_URL" envDefault:"https://newsapi.org/v2/everything"`

	DefaultTopic    string `env:"DEFAULT_TOPIC" envDefault:"artificial intelligence"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	DefaultPageSize int    `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int    `env:"MAX_PAGE_SIZE" envDefault:"100"`

	PositiveThreshold float64 `env:"SENTIMENT_THRESHOLD_POSITIVE" envDefault:"0.05"`
	NegativeThreshold float64 `env:"SENTIMENT_THRESHOLD_NEGATIVE" envDefault:"-0.05"`

	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30m"`
	RedisURL string        `env:"REDIS_URL"`

	Port        string `env:"PORT" envDefault:"8080"`
	FrontendURL string `env:"FRONTEND_URL"`
}

// Load reads configuration from the environment. A missing NewsAPI key is not
// a load error; the fetcher reports it per call so the app can still start.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) ValidLanguage(code string) bool {
	for _, l := range Languages {
		if l == code {
			return true
		}
	}
	return false
}

func (c Config) ValidSortBy(sortBy string) bool {
	for _, s := range SortOptions {
		if s == sortBy {
			return true
		}
	}
	return false
}
