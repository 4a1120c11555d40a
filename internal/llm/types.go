package llm

import (
	"context"

	"github.com/openai/openai-go"
)

type Provider interface {
	// Analyze sends one system and one user message and returns the reply
	Analyze(ctx context.Context, systemMessage, userMessage string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	Tools       []openai.ChatCompletionToolParam
}

func WithTools(tools ...openai.ChatCompletionToolParam) Option {
	return func(o *Options) { o.Tools = tools }
}

// FunctionResponse represents the structured response from a function call
type FunctionResponse struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type Response struct {
	Content      string
	FunctionCall *FunctionResponse
	Usage        Usage
}
