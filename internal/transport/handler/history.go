package handler

import (
	"net/http"

	"github.com/docdigest/docdigest/internal/repository"
	"github.com/docdigest/docdigest/internal/service"
	"github.com/docdigest/docdigest/internal/transport/response"
)

// recentHistoryCount is how many records the history endpoint returns.
const recentHistoryCount = 10

// History handles GET /history requests.
type History struct {
	summaryService *service.Summary
}

// NewHistory creates the history handler.
func NewHistory(summaryService *service.Summary) *History {
	return &History{summaryService: summaryService}
}

func (h *History) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	records, err := h.summaryService.Recent(r.Context(), recentHistoryCount)
	if err != nil {
		response.WriteInternalError(w, err.Error())
		return
	}
	if records == nil {
		records = []repository.HistoryRecord{}
	}
	response.WriteJSON(w, http.StatusOK, records)
}

// ClearHistory handles POST /history/clear requests.
type ClearHistory struct {
	summaryService *service.Summary
}

// NewClearHistory creates the clear-history handler.
func NewClearHistory(summaryService *service.Summary) *ClearHistory {
	return &ClearHistory{summaryService: summaryService}
}

type clearHistoryResponse struct {
	Success bool `json:"success"`
}

func (h *ClearHistory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.summaryService.ClearHistory(r.Context()); err != nil {
		response.WriteInternalError(w, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, clearHistoryResponse{Success: true})
}
