package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/sentiment-analyzer/internal/llm"
	"github.com/sozercan/sentiment-analyzer/internal/tools"
)

type mockProvider struct {
	resp *llm.Response
	err  error

	gotUser  string
	gotTools int
}

func (m *mockProvider) Analyze(_ context.Context, _, userMessage string, opts ...llm.Option) (*llm.Response, error) {
	m.gotUser = userMessage
	var o llm.Options
	for _, opt := range opts {
		opt(&o)
	}
	m.gotTools = len(o.Tools)
	return m.resp, m.err
}

func TestLLMAnalyze_FunctionCall(t *testing.T) {
	p := &mockProvider{resp: &llm.Response{FunctionCall: &llm.FunctionResponse{
		Name:      tools.ReportSentiment,
		Arguments: `{"label":"SENT_POSITIVE","score":0.91}`,
	}}}

	res, err := NewLLM(p).Analyze(context.Background(), "I love this")

	require.NoError(t, err)
	assert.Equal(t, &Result{Label: LabelPositive, Score: 0.91}, res)
	assert.Equal(t, "I love this", p.gotUser)
	assert.Equal(t, 1, p.gotTools)
}

func TestLLMAnalyze_PlainContent(t *testing.T) {
	p := &mockProvider{resp: &llm.Response{Content: `{"label":"SENT_NEUTRAL","score":0.5}`}}

	res, err := NewLLM(p).Analyze(context.Background(), "meh")

	require.NoError(t, err)
	assert.Equal(t, LabelNeutral, res.Label)
}

func TestLLMAnalyze_Failures(t *testing.T) {
	tests := []struct {
		name    string
		p       *mockProvider
		wantErr error
	}{
		{"provider error", &mockProvider{err: errors.New("dial tcp: timeout")}, ErrTransport},
		{"prose reply", &mockProvider{resp: &llm.Response{Content: "It sounds positive."}}, ErrMalformedResponse},
		{"wrong function", &mockProvider{resp: &llm.Response{FunctionCall: &llm.FunctionResponse{Name: "other", Arguments: `{}`}}}, ErrMalformedResponse},
		{"missing score", &mockProvider{resp: &llm.Response{FunctionCall: &llm.FunctionResponse{Name: tools.ReportSentiment, Arguments: `{"label":"SENT_POSITIVE"}`}}}, ErrMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewLLM(tt.p).Analyze(context.Background(), "text")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
