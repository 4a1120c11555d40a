package apimodels

type AnalysisResponse struct {
	// Human readable summary of the analysis
	Result string `json:"result"`

	// Label as returned by the backend, e.g. SENT_POSITIVE
	Label string `json:"label"`

	// Sentiment class derived from the label, e.g. POSITIVE
	Sentiment string `json:"sentiment"`

	Score float64 `json:"score"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Time taken for analysis
	Duration string `json:"duration"`

	// Backend used for analysis
	Backend string `json:"backend"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
