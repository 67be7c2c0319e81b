package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// NewsAPI rejects pageSize above 100; requested values are clamped.
	maxPageSize     = 100
	defaultPageSize = 10

	requestTimeout = 15 * time.Second
)

// Client fetches articles from the NewsAPI everything endpoint. Search never
// returns a Go error: every failure class is translated into a Message and
// the caller decides how to render it.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type newsAPIResponse struct {
	Status       string    `json:"status"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

func (c *Client) Search(ctx context.Context, q Query) Result {
	if c.apiKey == "" {
		return failure(KindConfig, "NewsAPI key is not configured, set NEWSAPI_KEY in the environment or .env file")
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return failure(KindConfig, fmt.Sprintf("invalid NewsAPI base URL: %v", err))
	}

	params := reqURL.Query()
	params.Set("q", q.Topic)
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortBy", q.SortBy)
	params.Set("language", q.Language)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return failure(KindTransport, fmt.Sprintf("error creating NewsAPI request: %v", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Messages: []Message{transportMessage(err)}}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Messages: []Message{statusMessage(resp.StatusCode)}}
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return failure(KindProtocol, "response from NewsAPI is not valid JSON")
	}

	if body.Status != "ok" {
		return failure(KindAPI, fmt.Sprintf("NewsAPI error: %s - %s", body.Code, body.Message))
	}

	if len(body.Articles) == 0 {
		return Result{Messages: []Message{{
			Kind: KindInfo,
			Text: fmt.Sprintf("no news found for topic %q in language %q", q.Topic, q.Language),
		}}}
	}

	return Result{Articles: body.Articles}
}

func failure(kind MessageKind, text string) Result {
	return Result{Messages: []Message{{Kind: kind, Text: text}}}
}

func transportMessage(err error) Message {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Message{Kind: KindTransport, Text: "request to NewsAPI timed out"}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Message{Kind: KindTransport, Text: "request to NewsAPI timed out"}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return Message{Kind: KindTransport, Text: "could not connect to NewsAPI, check your internet connection"}
	}

	return Message{Kind: KindTransport, Text: fmt.Sprintf("network error reaching NewsAPI: %v", err)}
}

func statusMessage(code int) Message {
	switch {
	case code == http.StatusBadRequest:
		return Message{Kind: KindHTTP, Text: "NewsAPI rejected the request (400): invalid request parameters"}
	case code == http.StatusUnauthorized:
		return Message{Kind: KindHTTP, Text: "NewsAPI rejected the request (401): invalid API key"}
	case code == http.StatusTooManyRequests:
		return Message{Kind: KindHTTP, Text: "NewsAPI rejected the request (429): rate limit exceeded, wait and try again"}
	case code >= http.StatusInternalServerError:
		return Message{Kind: KindHTTP, Text: fmt.Sprintf("NewsAPI server error (%d), try again later", code)}
	default:
		return Message{Kind: KindHTTP, Text: fmt.Sprintf("unexpected HTTP status %d from NewsAPI", code)}
	}
}
