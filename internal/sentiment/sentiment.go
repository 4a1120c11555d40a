package sentiment

import (
	"context"
	"errors"
	"strings"
)

// Labels returned by the remote service.
const (
	LabelPositive = "SENT_POSITIVE"
	LabelNegative = "SENT_NEGATIVE"
	LabelNeutral  = "SENT_NEUTRAL"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected status from sentiment service")
	ErrTransport         = errors.New("sentiment service unreachable")
	ErrMalformedResponse = errors.New("malformed sentiment response")
)

// Result is a label/score pair. A nil *Result means no result was produced.
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Class returns the part of the label after the first underscore,
// e.g. "POSITIVE" for "SENT_POSITIVE".
func (r Result) Class() string {
	if _, class, ok := strings.Cut(r.Label, "_"); ok {
		return class
	}
	return r.Label
}

// Backend analyzes a piece of text. Implementations return either a
// non-nil result and a nil error, or a nil result and an error.
type Backend interface {
	Analyze(ctx context.Context, text string) (*Result, error)
	Name() string
}
