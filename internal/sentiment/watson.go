package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultWatsonURL     = "https://sn-watson-sentiment-bert.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/SentimentPredict"
	DefaultWatsonModelID = "sentiment_aggregated-bert-workflow_lang_multi_stock"
	DefaultWatsonTimeout = 10 * time.Second

	modelIDHeader = "grpc-metadata-mm-model-id"
)

type watsonRequest struct {
	RawDocument struct {
		Text string `json:"text"`
	} `json:"raw_document"`
}

type watsonResponse struct {
	DocumentSentiment *struct {
		Label *string  `json:"label"`
		Score *float64 `json:"score"`
	} `json:"documentSentiment"`
}

// Watson calls the Watson NLP SentimentPredict endpoint.
type Watson struct {
	url     string
	modelID string
	client  *http.Client
}

type WatsonOption func(*Watson)

func WithURL(url string) WatsonOption {
	return func(w *Watson) { w.url = url }
}

func WithModelID(id string) WatsonOption {
	return func(w *Watson) { w.modelID = id }
}

// WithHTTPClient replaces the default client, which has a 10s timeout.
func WithHTTPClient(c *http.Client) WatsonOption {
	return func(w *Watson) { w.client = c }
}

func NewWatson(opts ...WatsonOption) *Watson {
	w := &Watson{
		url:     DefaultWatsonURL,
		modelID: DefaultWatsonModelID,
		client:  &http.Client{Timeout: DefaultWatsonTimeout},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Watson) Name() string { return "watson" }

func (w *Watson) Analyze(ctx context.Context, text string) (*Result, error) {
	var payload watsonRequest
	payload.RawDocument.Text = text

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(modelIDHeader, w.modelID)

	start := time.Now()
	resp, err := w.client.Do(req)
	if err != nil {
		slog.Warn("Watson request failed", "error", err, "elapsed", time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Watson returned non-200 status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var decoded watsonResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		slog.Warn("Watson response is not JSON", "error", err, "raw_response", preview(raw))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	ds := decoded.DocumentSentiment
	if ds == nil || ds.Label == nil || ds.Score == nil {
		slog.Warn("Watson response is missing documentSentiment fields", "raw_response", preview(raw))
		return nil, fmt.Errorf("%w: missing documentSentiment.label or documentSentiment.score", ErrMalformedResponse)
	}

	slog.Debug("Watson request completed", "label", *ds.Label, "score", *ds.Score, "elapsed", time.Since(start))
	return &Result{Label: *ds.Label, Score: *ds.Score}, nil
}

func preview(raw []byte) string {
	if len(raw) > 50 {
		return string(raw[:50])
	}
	return string(raw)
}
