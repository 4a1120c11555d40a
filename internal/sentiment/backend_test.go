package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/sentiment-analyzer/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{config.BackendWatson, "watson"},
		{config.BackendOpenAI, "openai"},
		{config.BackendVader, "vader"},
	}
	for _, tt := range tests {
		cfg := &config.Config{
			Sentiment: config.SentimentConfig{Backend: tt.backend},
			Watson:    config.WatsonConfig{URL: DefaultWatsonURL, ModelID: DefaultWatsonModelID},
			OpenAI:    config.OpenAIConfig{APIKey: "sk-test", APIEndpoint: "http://localhost:1", Model: "gpt-4o-mini"},
		}
		b, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, tt.want, b.Name())
	}

	_, err := New(&config.Config{Sentiment: config.SentimentConfig{Backend: "nope"}})
	assert.Error(t, err)
}
