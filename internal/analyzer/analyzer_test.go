package analyzer

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/sentiment-analyzer/apimodels"
	"github.com/sozercan/sentiment-analyzer/internal/metrics"
	"github.com/sozercan/sentiment-analyzer/internal/sentiment"
)

type stubBackend struct {
	result *sentiment.Result
	err    error
	calls  int
	got    string
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Analyze(_ context.Context, text string) (*sentiment.Result, error) {
	s.calls++
	s.got = text
	return s.result, s.err
}

func ptr(s string) *string { return &s }

func TestAnalyze_Success(t *testing.T) {
	backend := &stubBackend{result: &sentiment.Result{Label: "SENT_POSITIVE", Score: 0.9987}}
	before := testutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues("stub", metrics.OutcomeSuccess))

	resp, err := New(backend).Analyze(context.Background(), apimodels.AnalysisRequest{Text: ptr("I love this")})

	require.NoError(t, err)
	assert.Equal(t, "I love this", backend.got)
	assert.Equal(t, "The given text has been identified as POSITIVE with a score of 0.9987.", resp.Result)
	assert.Equal(t, "SENT_POSITIVE", resp.Label)
	assert.Equal(t, "POSITIVE", resp.Sentiment)
	assert.Equal(t, 0.9987, resp.Score)
	assert.Equal(t, "stub", resp.Metadata.Backend)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues("stub", metrics.OutcomeSuccess)))
}

func TestAnalyze_MissingText(t *testing.T) {
	backend := &stubBackend{}

	resp, err := New(backend).Analyze(context.Background(), apimodels.AnalysisRequest{})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, backend.calls)
}

func TestAnalyze_EmptyTextIsForwarded(t *testing.T) {
	backend := &stubBackend{err: fmt.Errorf("%w: 400", sentiment.ErrUnexpectedStatus)}

	_, err := New(backend).Analyze(context.Background(), apimodels.AnalysisRequest{Text: ptr("")})

	assert.Equal(t, 1, backend.calls)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyze_BackendErrors(t *testing.T) {
	tests := []struct {
		err     error
		outcome string
	}{
		{fmt.Errorf("%w: 500", sentiment.ErrUnexpectedStatus), metrics.OutcomeUnexpectedStatus},
		{fmt.Errorf("%w: timeout", sentiment.ErrTransport), metrics.OutcomeTransportError},
		{fmt.Errorf("%w: not json", sentiment.ErrMalformedResponse), metrics.OutcomeMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			counter := metrics.AnalysesTotal.WithLabelValues("stub", tt.outcome)
			before := testutil.ToFloat64(counter)

			resp, err := New(&stubBackend{err: tt.err}).Analyze(context.Background(), apimodels.AnalysisRequest{Text: ptr("x")})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "The given text has been identified as NEGATIVE with a score of 0.5.",
		Message(sentiment.Result{Label: "SENT_NEGATIVE", Score: 0.5}))
	assert.Equal(t, "The given text has been identified as NEUTRAL with a score of 0.87.",
		Message(sentiment.Result{Label: "SENT_NEUTRAL", Score: 0.87}))
}
