package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/HSN51/AI-News-Dashboard/internal/config"
	"github.com/HSN51/AI-News-Dashboard/pkg/news"
	"github.com/HSN51/AI-News-Dashboard/pkg/sentiment"
)

type fakeSearcher struct {
	result    news.Result
	lastQuery news.Query
}

func (f *fakeSearcher) Search(ctx context.Context, q news.Query) news.Result {
	f.lastQuery = q
	return f.result
}

// fakeScorer labels descriptions by keyword so tests control the distribution.
type fakeScorer struct{}

func (fakeScorer) Analyze(text string) sentiment.Result {
	switch {
	case strings.Contains(text, "great"):
		return sentiment.Result{Label: sentiment.LabelPositive, Score: 0.7}
	case strings.Contains(text, "awful"):
		return sentiment.Result{Label: sentiment.LabelNegative, Score: -0.6}
	default:
		return sentiment.Result{Label: sentiment.LabelNeutral, Score: 0.0}
	}
}

func testConfig() config.Config {
	return config.Config{
		DefaultTopic:    "artificial intelligence",
		DefaultLanguage: "en",
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}
}

func newTestRouter(searcher news.Searcher) (*gin.Engine, *NewsHandler) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(searcher, fakeScorer{}, testConfig(), "memory")
	r.GET("/news", h.GetNews)
	r.GET("/options", h.GetOptions)
	r.GET("/health", h.GetHealth)
	return r, h
}

func TestGetNews_ScoresAndTallies(t *testing.T) {
	searcher := &fakeSearcher{result: news.Result{Articles: []news.Article{
		{Title: "Upbeat", Description: "great results", PublishedAt: "2024-01-15T10:30:00Z", Source: news.Source{Name: "TechCrunch"}},
		{Title: "Gloomy", Description: "awful results", URL: "https://example.com/gloomy"},
		{Title: "Plain", Description: "quarterly report"},
		{Title: "Bare"},
	}}}
	r, _ := newTestRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?topic=ai", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "ai", res.Topic)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 4, len(res.Articles))
	assert.Equal(t, 0, len(res.Messages))

	assert.Equal(t, "Positive", res.Articles[0].Sentiment.Label)
	assert.Equal(t, 0.7, res.Articles[0].Sentiment.Score)
	assert.Equal(t, "15 January 2024, 10:30", res.Articles[0].PublishedAt)
	assert.Equal(t, "TechCrunch", res.Articles[0].Source)

	assert.Equal(t, "Negative", res.Articles[1].Sentiment.Label)
	assert.Equal(t, "No date", res.Articles[1].PublishedAt)

	// No description, never scored.
	if res.Articles[3].Sentiment != nil {
		t.Errorf("expected article without description to have no sentiment, got %+v", res.Articles[3].Sentiment)
	}

	assert.Equal(t, 1, res.Distribution.Positive)
	assert.Equal(t, 1, res.Distribution.Negative)
	assert.Equal(t, 1, res.Distribution.Neutral)
}

func TestGetNews_MissingTitlePlaceholder(t *testing.T) {
	searcher := &fakeSearcher{result: news.Result{Articles: []news.Article{{Description: "quarterly report"}}}}
	r, _ := newTestRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?topic=ai", nil)
	r.ServeHTTP(w, req)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "No title", res.Articles[0].Title)
}

func TestGetNews_TopicRequired(t *testing.T) {
	r, _ := newTestRouter(&fakeSearcher{})

	for _, target := range []string{"/news", "/news?topic=%20%20"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", target, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetNews_UnsupportedParams(t *testing.T) {
	r, _ := newTestRouter(&fakeSearcher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?topic=ai&language=xx", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/news?topic=ai&sort_by=newest", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNews_PageSizeClamping(t *testing.T) {
	searcher := &fakeSearcher{result: news.Result{}}
	r, _ := newTestRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?topic=ai&page_size=500", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, 100, searcher.lastQuery.PageSize)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/news?topic=ai", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, 10, searcher.lastQuery.PageSize)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/news?topic=ai&page_size=abc", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, 10, searcher.lastQuery.PageSize)
}

func TestGetNews_DefaultsForwarded(t *testing.T) {
	searcher := &fakeSearcher{result: news.Result{}}
	r, _ := newTestRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?topic=ai", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "en", searcher.lastQuery.Language)
	assert.Equal(t, "relevancy", searcher.lastQuery.SortBy)
}

func TestGetNews_FailureMessagesArePassedThrough(t *testing.T) {
	searcher := &fakeSearcher{result: news.Result{Messages: []news.Message{
		{Kind: news.KindHTTP, Text: "NewsAPI rejected the request (401): invalid API key"},
	}}}
	r, _ := newTestRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?topic=ai", nil)
	r.ServeHTTP(w, req)

	// Fetch failures are data for the frontend, not HTTP errors.
	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0, len(res.Articles))
	assert.Equal(t, 1, len(res.Messages))
	assert.Equal(t, "http", res.Messages[0].Kind)
	assert.Equal(t, true, strings.Contains(res.Messages[0].Text, "invalid API key"))
}

func TestGetNews_ZeroResultsIsInformational(t *testing.T) {
	searcher := &fakeSearcher{result: news.Result{Messages: []news.Message{
		{Kind: news.KindInfo, Text: `no news found for topic "qwzx" in language "en"`},
	}}}
	r, _ := newTestRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?topic=qwzx", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "info", res.Messages[0].Kind)
	assert.Equal(t, 0, res.Total)
}

func TestGetOptions(t *testing.T) {
	r, _ := newTestRouter(&fakeSearcher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/options", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res OptionsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "artificial intelligence", res.DefaultTopic)
	assert.Equal(t, "en", res.DefaultLanguage)
	assert.Equal(t, 100, res.MaxPageSize)
	assert.Equal(t, []string{"relevancy", "popularity", "publishedAt"}, res.SortOptions)
	assert.Equal(t, "en", res.Languages["English"])
}

func TestGetHealth(t *testing.T) {
	r, _ := newTestRouter(&fakeSearcher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "memory", res["cache"])
}
