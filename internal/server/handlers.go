package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sozercan/sentiment-analyzer/apimodels"
	"github.com/sozercan/sentiment-analyzer/internal/analyzer"
)

const textParam = "textToAnalyze"

// handleSentimentAnalyzer answers the form on the index page in plain text.
func (s *Server) handleSentimentAnalyzer(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if query := r.URL.Query(); query.Has(textParam) {
		text := query.Get(textParam)
		req.Text = &text
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		io.WriteString(w, analyzer.InvalidInputMessage)
		return
	}

	io.WriteString(w, result.Result)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{Error: fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	defer r.Body.Close()

	slog.Debug("Received analysis request")

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Debug("Analysis request failed", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, apimodels.ErrorResponse{Error: analyzer.InvalidInputMessage})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": s.analyzer.Backend(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
