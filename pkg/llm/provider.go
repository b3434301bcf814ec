package llm

import (
	"context"
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// ApplyOptions folds options over defaults.
func ApplyOptions(defaults Options, options ...Option) Options {
	for _, opt := range options {
		opt(&defaults)
	}
	return defaults
}

type ReplyRequest struct {
	BrandName string
	Message   string
}

type GenerateRequest struct {
	Prompt        string
	ThemeName     string
	ThemeCategory string
	Platform      string
}

type OptimizeRequest struct {
	Content       string
	Platform      string
	BrandName     string
	BrandHashtags []string
	ThemeName     string
	ThemeCategory string
}

type KeywordRequest struct {
	BrandName string
	Keywords  []string
	Hashtags  []string
}

type KeywordStat struct {
	Keyword    string `json:"keyword"`
	Volume     int    `json:"volume"`
	Difficulty int    `json:"difficulty"`
	Relevance  int    `json:"relevance"`
}

type HashtagStat struct {
	Hashtag    string `json:"hashtag"`
	Popularity int    `json:"popularity"`
	Relevance  int    `json:"relevance"`
}

type KeywordAnalysis struct {
	Keywords        []KeywordStat `json:"keywords"`
	Hashtags        []HashtagStat `json:"hashtags"`
	Recommendations []string      `json:"recommendations"`
}

type ImageRequest struct {
	Prompt  string
	BrandId string
}

// ContentProvider is the contract every generation backend implements.
// Implementations must be safe for concurrent use.
type ContentProvider interface {
	// Reply answers a chat message in the brand's voice.
	Reply(ctx context.Context, req ReplyRequest, options ...Option) (string, error)

	// Generate produces one content piece for a theme.
	Generate(ctx context.Context, req GenerateRequest, options ...Option) (string, error)

	// Optimize rewrites existing content for a platform.
	Optimize(ctx context.Context, req OptimizeRequest, options ...Option) (string, error)

	AnalyzeKeywords(ctx context.Context, req KeywordRequest) (*KeywordAnalysis, error)

	// GenerateImage returns the URL of an illustration for the prompt.
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}
