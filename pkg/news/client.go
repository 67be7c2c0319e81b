package news

import (
	"context"
	"fmt"
)

// Article mirrors the NewsAPI wire format. Every field may be empty; the
// presentation layer decides on placeholders.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      Source `json:"source"`
}

type Source struct {
	Name string `json:"name"`
}

// MessageKind classifies a fetch outcome message. KindInfo is informational
// (zero matching articles), every other kind is a failure.
type MessageKind string

const (
	KindConfig    MessageKind = "config"
	KindTransport MessageKind = "transport"
	KindProtocol  MessageKind = "protocol"
	KindAPI       MessageKind = "api"
	KindHTTP      MessageKind = "http"
	KindInfo      MessageKind = "info"
)

type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

// Result is the outcome of one search. Exactly one of these holds per call:
// articles non-empty, a failure message, or the zero-results info message.
type Result struct {
	Articles []Article `json:"articles"`
	Messages []Message `json:"messages"`
}

// Failed reports whether the result carries a failure message. The
// zero-results case is not a failure.
func (r Result) Failed() bool {
	for _, m := range r.Messages {
		if m.Kind != KindInfo {
			return true
		}
	}
	return false
}

// Query holds the search parameters. Identical queries within the cache
// window share one upstream call.
type Query struct {
	Topic    string
	Language string
	PageSize int
	SortBy   string
}

// Key is the exact parameter tuple used for memoization.
func (q Query) Key() string {
	return fmt.Sprintf("%s|%s|%d|%s", q.Topic, q.Language, q.PageSize, q.SortBy)
}

type Searcher interface {
	Search(ctx context.Context, q Query) Result
}
