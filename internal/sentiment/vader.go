package sentiment

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

const vaderThreshold = 0.20

var (
	markdownLink = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURL      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Vader scores text locally with the VADER lexicon. It never fails.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Name() string { return "vader" }

// Analyze maps the compound polarity onto the remote label vocabulary.
// Score is the magnitude of the compound value.
func (v *Vader) Analyze(_ context.Context, text string) (*Result, error) {
	plain := plainText(text)
	if plain == "" {
		return &Result{Label: LabelNeutral, Score: 0}, nil
	}
	compound := v.analyzer.PolarityScores(plain).Compound

	label := LabelNeutral
	switch {
	case compound >= vaderThreshold:
		label = LabelPositive
	case compound <= -vaderThreshold:
		label = LabelNegative
	}

	return &Result{Label: label, Score: math.Abs(compound)}, nil
}

func plainText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := stripTags(string(rendered))
	text = markdownLink.ReplaceAllString(text, "$1")
	text = bareURL.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return htmlTag.ReplaceAllString(s, " ")
}
