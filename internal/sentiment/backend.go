package sentiment

import (
	"fmt"
	"net/http"

	"github.com/sozercan/sentiment-analyzer/internal/config"
	"github.com/sozercan/sentiment-analyzer/internal/llm"
)

// New returns the backend selected by cfg.Sentiment.Backend.
func New(cfg *config.Config) (Backend, error) {
	switch cfg.Sentiment.Backend {
	case config.BackendWatson, "":
		timeout := cfg.Watson.Timeout
		if timeout <= 0 {
			timeout = DefaultWatsonTimeout
		}
		return NewWatson(
			WithURL(cfg.Watson.URL),
			WithModelID(cfg.Watson.ModelID),
			WithHTTPClient(&http.Client{Timeout: timeout}),
		), nil
	case config.BackendOpenAI:
		provider, err := llm.NewOpenAI(&cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM provider: %w", err)
		}
		return NewLLM(provider), nil
	case config.BackendVader:
		return NewVader(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment backend %q", cfg.Sentiment.Backend)
	}
}
