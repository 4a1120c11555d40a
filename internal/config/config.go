package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	BackendWatson = "watson"
	BackendOpenAI = "openai"
	BackendVader  = "vader"
)

type Config struct {
	AppEnv    string          `mapstructure:"app_env"`
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Sentiment SentimentConfig `mapstructure:"sentiment"`
	Watson    WatsonConfig    `mapstructure:"watson"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type SentimentConfig struct {
	Backend string `mapstructure:"backend"`
}

type WatsonConfig struct {
	URL     string        `mapstructure:"url"`
	ModelID string        `mapstructure:"model_id"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type OpenAIConfig struct {
	Provider       string        `mapstructure:"provider"`
	APIKey         string        `mapstructure:"api_key"`
	APIEndpoint    string        `mapstructure:"endpoint"`
	Model          string        `mapstructure:"model"`
	DeploymentName string        `mapstructure:"deployment"`
	APIVersion     string        `mapstructure:"api_version"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

var defaults = map[string]any{
	"app_env":              "development",
	"log.level":            "info",
	"server.port":          "5000",
	"server.host":          "0.0.0.0",
	"server.read_timeout":  "30s",
	"server.write_timeout": "30s",
	"sentiment.backend":    BackendWatson,
	"watson.url":           "https://sn-watson-sentiment-bert.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/SentimentPredict",
	"watson.model_id":      "sentiment_aggregated-bert-workflow_lang_multi_stock",
	"watson.timeout":       "10s",
	"openai.provider":      "openai",
	"openai.api_key":       "",
	"openai.endpoint":      "https://api.openai.com/v1",
	"openai.model":         "gpt-4o-mini",
	"openai.deployment":    "gpt-4o",
	"openai.api_version":   "2023-05-15",
	"openai.timeout":       "10s",
}

// LoadConfig reads an optional .env file and then the environment.
// Keys map to upper-case variables with dots replaced by underscores,
// so "watson.url" is read from WATSON_URL.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := gotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file found, using OS environment")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("configuration loaded successfully", "backend", cfg.Sentiment.Backend)
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Sentiment.Backend {
	case BackendWatson:
		if c.Watson.URL == "" {
			return fmt.Errorf("WATSON_URL cannot be empty")
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the %s backend", BackendOpenAI)
		}
	case BackendVader:
	default:
		return fmt.Errorf("unknown sentiment backend %q", c.Sentiment.Backend)
	}
	return nil
}
