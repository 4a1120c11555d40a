package tools

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
)

const ReportSentiment = "report_sentiment"

// SentimentReport holds the arguments of a report_sentiment call.
type SentimentReport struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

// Specs lists the functions the model may call.
var Specs = []openai.ChatCompletionToolParam{
	{
		Type: openai.F(openai.ChatCompletionToolTypeFunction),
		Function: openai.F(openai.FunctionDefinitionParam{
			Name:        openai.String(ReportSentiment),
			Description: openai.String("Report the overall sentiment of the user's document"),
			Parameters: openai.F(openai.FunctionParameters{
				"type": "object",
				"properties": map[string]interface{}{
					"label": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"SENT_POSITIVE", "SENT_NEGATIVE", "SENT_NEUTRAL"},
						"description": "The sentiment class of the whole document",
					},
					"score": map[string]interface{}{
						"type":        "number",
						"minimum":     0,
						"maximum":     1,
						"description": "Confidence in the label, between 0 and 1",
					},
				},
				"required": []string{"label", "score"},
			}),
		}),
	},
}

// ParseSentimentReport decodes tool arguments or a JSON reply. Both
// fields must be present.
func ParseSentimentReport(arguments string) (SentimentReport, error) {
	var report SentimentReport
	if err := json.Unmarshal([]byte(arguments), &report); err != nil {
		return SentimentReport{}, fmt.Errorf("invalid %s arguments: %w", ReportSentiment, err)
	}
	if report.Label == nil || report.Score == nil {
		return SentimentReport{}, fmt.Errorf("invalid %s arguments: label and score are required", ReportSentiment)
	}
	return report, nil
}
