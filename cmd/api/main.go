package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/HSN51/AI-News-Dashboard/internal/cache"
	"github.com/HSN51/AI-News-Dashboard/internal/config"
	"github.com/HSN51/AI-News-Dashboard/internal/handler"
	"github.com/HSN51/AI-News-Dashboard/pkg/news"
	"github.com/HSN51/AI-News-Dashboard/pkg/sentiment"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if cfg.NewsAPIKey == "" {
		slog.Warn("NEWSAPI_KEY is not set, fetches will report a configuration error")
	}

	analyzer := sentiment.NewAnalyzerWithThresholds(cfg.PositiveThreshold, cfg.NegativeThreshold)

	var store news.ResultCache
	cacheName := "memory"

	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			slog.Error("error connecting to Redis, falling back to in-memory cache", "error", err)
		} else {
			defer redisCache.Close()
			store = redisCache
			cacheName = redisCache.Name()
		}
	}
	if store == nil {
		store = cache.NewMemory(cfg.CacheTTL)
	}

	searcher := news.NewCachedSearcher(news.NewClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL), store)
	newsHandler := handler.NewNewsHandler(searcher, analyzer, cfg, cacheName)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/news", newsHandler.GetNews)
	r.GET("/options", newsHandler.GetOptions)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
