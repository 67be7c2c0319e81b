package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HSN51/AI-News-Dashboard/internal/config"
	"github.com/HSN51/AI-News-Dashboard/pkg/news"
	"github.com/HSN51/AI-News-Dashboard/pkg/sentiment"
)

const noTitlePlaceholder = "No title"

type Scorer interface {
	Analyze(text string) sentiment.Result
}

type NewsHandler struct {
	searcher  news.Searcher
	scorer    Scorer
	cfg       config.Config
	cacheName string
}

func NewNewsHandler(searcher news.Searcher, scorer Scorer, cfg config.Config, cacheName string) *NewsHandler {
	return &NewsHandler{searcher: searcher, scorer: scorer, cfg: cfg, cacheName: cacheName}
}

// GetNews runs one fetch-and-score cycle. Fetch problems are returned as
// message data with HTTP 200; the frontend decides how to render them. Only
// a missing topic or an unsupported enum value is a client error.
func (h *NewsHandler) GetNews(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	language := c.DefaultQuery("language", h.cfg.DefaultLanguage)
	if !h.cfg.ValidLanguage(language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language: " + language})
		return
	}

	sortBy := c.DefaultQuery("sort_by", "relevancy")
	if !h.cfg.ValidSortBy(sortBy) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported sort_by: " + sortBy})
		return
	}

	pageSize := h.getQueryPageSize(c)

	result := h.searcher.Search(c.Request.Context(), news.Query{
		Topic:    topic,
		Language: language,
		PageSize: pageSize,
		SortBy:   sortBy,
	})

	articles := make([]ArticleResponse, 0, len(result.Articles))
	var labels []sentiment.Label

	for _, a := range result.Articles {
		ar := ArticleResponse{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Source:      a.Source.Name,
			PublishedAt: FormatPublishedAt(a.PublishedAt),
		}
		if ar.Title == "" {
			ar.Title = noTitlePlaceholder
		}

		// Articles without a description are never scored and stay out
		// of the distribution.
		if strings.TrimSpace(a.Description) != "" {
			s := h.scorer.Analyze(a.Description)
			ar.Sentiment = &SentimentResponse{Label: string(s.Label), Score: s.Score}
			labels = append(labels, s.Label)
		}

		articles = append(articles, ar)
	}

	dist := sentiment.Tally(labels)

	messages := make([]MessageResponse, 0, len(result.Messages))
	for _, m := range result.Messages {
		messages = append(messages, MessageResponse{Kind: string(m.Kind), Text: m.Text})
	}

	c.JSON(http.StatusOK, NewsResponse{
		Topic:    topic,
		Articles: articles,
		Distribution: DistributionResponse{
			Positive: dist[sentiment.LabelPositive],
			Negative: dist[sentiment.LabelNegative],
			Neutral:  dist[sentiment.LabelNeutral],
		},
		Messages: messages,
		Total:    len(result.Articles),
	})
}

func (h *NewsHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsResponse{
		DefaultTopic:    h.cfg.DefaultTopic,
		DefaultLanguage: h.cfg.DefaultLanguage,
		Languages:       config.Languages,
		SortOptions:     config.SortOptions,
		DefaultPageSize: h.cfg.DefaultPageSize,
		MaxPageSize:     h.cfg.MaxPageSize,
	})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"cache":  h.cacheName,
	})
}

func (h *NewsHandler) getQueryPageSize(c *gin.Context) int {
	raw := c.Query("page_size")
	if raw == "" {
		return h.cfg.DefaultPageSize
	}

	pageSize, err := strconv.Atoi(raw)
	if err != nil || pageSize < 1 {
		slog.Warn("invalid query parameter, using default", "param", "page_size", "value", raw, "default", h.cfg.DefaultPageSize)
		return h.cfg.DefaultPageSize
	}

	if pageSize > h.cfg.MaxPageSize {
		slog.Warn("query parameter exceeds max, clamping", "param", "page_size", "value", pageSize, "max", h.cfg.MaxPageSize)
		return h.cfg.MaxPageSize
	}

	return pageSize
}
