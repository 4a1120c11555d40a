package apimodels

type AnalysisRequest struct {
	// Text is the document to analyze. Nil means no text was supplied.
	Text *string `json:"text"`
}
