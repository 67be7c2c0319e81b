package handler

type SentimentResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type ArticleResponse struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	URL         string             `json:"url"`
	ImageURL    string             `json:"image_url"`
	Source      string             `json:"source"`
	PublishedAt string             `json:"published_at"`
	Sentiment   *SentimentResponse `json:"sentiment,omitempty"`
}

type DistributionResponse struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

type MessageResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type NewsResponse struct {
	Topic        string               `json:"topic"`
	Articles     []ArticleResponse    `json:"articles"`
	Distribution DistributionResponse `json:"distribution"`
	Messages     []MessageResponse    `json:"messages"`
	Total        int                  `json:"total"`
}

type OptionsResponse struct {
	DefaultTopic    string            `json:"default_topic"`
	DefaultLanguage string            `json:"default_language"`
	Languages       map[string]string `json:"languages"`
	SortOptions     []string          `json:"sort_options"`
	DefaultPageSize int               `json:"default_page_size"`
	MaxPageSize     int               `json:"max_page_size"`
}
