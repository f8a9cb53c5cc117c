package handler

import (
	"encoding/json"
	"net/http"

	"github.com/docdigest/docdigest/internal/entity"
	"github.com/docdigest/docdigest/internal/service"
	"github.com/docdigest/docdigest/internal/transport/response"
)

// Summarize handles POST /summarize requests.
type Summarize struct {
	summaryService *service.Summary
}

// NewSummarize creates the summarize handler.
func NewSummarize(summaryService *service.Summary) *Summarize {
	return &Summarize{summaryService: summaryService}
}

type summarizeRequest struct {
	Text     string `json:"text"`
	MaxWords int    `json:"max_words"`
}

type summarizeResponse struct {
	Success           bool            `json:"success"`
	Summary           string          `json:"summary"`
	Entities          []entity.Entity `json:"entities"`
	OriginalWordCount int             `json:"original_word_count"`
	SummaryWordCount  int             `json:"summary_word_count"`
	CompressionRatio  float64         `json:"compression_ratio"`
	Timestamp         string          `json:"timestamp"`
}

func (h *Summarize) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	result, err := h.summaryService.Process(r.Context(), req.Text, req.MaxWords)
	if err != nil {
		if service.IsUserError(err) {
			response.WriteBadRequest(w, err.Error())
		} else {
			response.WriteInternalError(w, err.Error())
		}
		return
	}

	response.WriteJSON(w, http.StatusOK, summarizeResponse{
		Success:           true,
		Summary:           result.Summary,
		Entities:          result.Entities,
		OriginalWordCount: result.OriginalWordCount,
		SummaryWordCount:  result.SummaryWordCount,
		CompressionRatio:  result.CompressionRatio,
		Timestamp:         result.Timestamp,
	})
}
