package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/HSN51/AI-News-Dashboard/internal/config"
	"github.com/HSN51/AI-News-Dashboard/pkg/news"
	"github.com/HSN51/AI-News-Dashboard/pkg/sentiment"
)

// One-shot pipeline run: fetch a topic, score every described article and
// log the distribution. Usage: fetcher [topic...]
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	topic := cfg.DefaultTopic
	if len(os.Args) > 1 {
		topic = strings.Join(os.Args[1:], " ")
	}

	client := news.NewClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL)
	analyzer := sentiment.NewAnalyzerWithThresholds(cfg.PositiveThreshold, cfg.NegativeThreshold)

	result := client.Search(context.Background(), news.Query{
		Topic:    topic,
		Language: cfg.DefaultLanguage,
		PageSize: cfg.DefaultPageSize,
		SortBy:   "relevancy",
	})

	for _, m := range result.Messages {
		if m.Kind == news.KindInfo {
			slog.Info(m.Text, "topic", topic)
		} else {
			slog.Error(m.Text, "kind", string(m.Kind), "topic", topic)
		}
	}

	if result.Failed() {
		os.Exit(1)
	}

	var labels []sentiment.Label

	for _, a := range result.Articles {
		if strings.TrimSpace(a.Description) == "" {
			slog.Info("article skipped, no description", "title", a.Title, "source", a.Source.Name)
			continue
		}

		s := analyzer.Analyze(a.Description)
		labels = append(labels, s.Label)

		slog.Info("article scored",
			"title", a.Title,
			"source", a.Source.Name,
			"label", string(s.Label),
			"score", s.Score,
		)
	}

	dist := sentiment.Tally(labels)

	slog.Info("fetch complete",
		"topic", topic,
		"articles", len(result.Articles),
		"scored", len(labels),
		"positive", dist[sentiment.LabelPositive],
		"negative", dist[sentiment.LabelNegative],
		"neutral", dist[sentiment.LabelNeutral],
	)
}
