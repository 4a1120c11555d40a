package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/sozercan/sentiment-analyzer/apimodels"
	"github.com/sozercan/sentiment-analyzer/internal/metrics"
	"github.com/sozercan/sentiment-analyzer/internal/sentiment"
)

// InvalidInputMessage is shown for every kind of failure.
const InvalidInputMessage = "Invalid input! Try again."

var ErrInvalidInput = errors.New("invalid input")

type Analyzer struct {
	backend sentiment.Backend
}

func New(backend sentiment.Backend) *Analyzer {
	return &Analyzer{backend: backend}
}

func (a *Analyzer) Backend() string {
	return a.backend.Name()
}

// Analyze runs the backend once. Every failure, including a missing text,
// is returned as an error wrapping ErrInvalidInput.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	backend := a.backend.Name()
	if req.Text == nil {
		metrics.AnalysesTotal.WithLabelValues(backend, metrics.OutcomeMissingInput).Inc()
		return nil, fmt.Errorf("%w: no text supplied", ErrInvalidInput)
	}

	slog.Debug("Starting analysis", "backend", backend, "length", len(*req.Text))
	startTime := time.Now()

	result, err := a.backend.Analyze(ctx, *req.Text)
	elapsed := time.Since(startTime)
	metrics.AnalysisDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
	metrics.AnalysesTotal.WithLabelValues(backend, outcome(err)).Inc()

	if err != nil {
		slog.Warn("Analysis failed", "backend", backend, "error", err, "duration", elapsed)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: backend returned no result", ErrInvalidInput)
	}

	slog.Info("Analysis completed", "backend", backend, "label", result.Label, "score", result.Score, "duration", elapsed)

	return &apimodels.AnalysisResponse{
		Result:    Message(*result),
		Label:     result.Label,
		Sentiment: result.Class(),
		Score:     result.Score,
		Metadata: apimodels.AnalysisMetadata{
			Duration: elapsed.String(),
			Backend:  backend,
		},
	}, nil
}

// Message renders a result the way the web page shows it.
func Message(r sentiment.Result) string {
	return fmt.Sprintf("The given text has been identified as %s with a score of %s.",
		r.Class(), strconv.FormatFloat(r.Score, 'f', -1, 64))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, sentiment.ErrUnexpectedStatus):
		return metrics.OutcomeUnexpectedStatus
	case errors.Is(err, sentiment.ErrMalformedResponse):
		return metrics.OutcomeMalformed
	default:
		return metrics.OutcomeTransportError
	}
}
