package handler

import (
	"net/http"
	"time"

	"github.com/docdigest/docdigest/internal/transport/response"
)

// Health provides the health check endpoint. It also reports which
// summarization strategy the process resolved at startup.
type Health struct {
	strategy string
}

// NewHealth creates the health handler.
func NewHealth(strategy string) *Health {
	return &Health{strategy: strategy}
}

type healthResponse struct {
	Status    string `json:"status"`
	Strategy  string `json:"strategy"`
	Timestamp int64  `json:"timestamp"`
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Strategy:  h.strategy,
		Timestamp: time.Now().Unix(),
	})
}
