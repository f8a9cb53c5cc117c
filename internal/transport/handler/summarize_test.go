package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docdigest/docdigest/internal/entity"
	"github.com/docdigest/docdigest/internal/mocks"
	"github.com/docdigest/docdigest/internal/service"
	"github.com/docdigest/docdigest/internal/summarize"
)

func newSummarizeHandler(strategy summarize.Strategy, history *mocks.MockHistory) *Summarize {
	engine := summarize.NewEngine(strategy)
	extractor := entity.NewExtractor(nil)
	return NewSummarize(service.NewSummary(engine, extractor, history))
}

func wordText(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshaling request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSummarizeHandlerSuccess(t *testing.T) {
	h := newSummarizeHandler(&mocks.MockSummarizeStrategy{Summary: "a compact summary"}, &mocks.MockHistory{})

	w := postJSON(t, h, "/api/v1/summarize", map[string]interface{}{"text": wordText(60)})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success           bool    `json:"success"`
		Summary           string  `json:"summary"`
		OriginalWordCount int     `json:"original_word_count"`
		SummaryWordCount  int     `json:"summary_word_count"`
		CompressionRatio  float64 `json:"compression_ratio"`
		Timestamp         string  `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}

	if !resp.Success {
		t.Error("Expected success true")
	}
	if resp.Summary != "a compact summary" {
		t.Errorf("Expected summary in response, got %q", resp.Summary)
	}
	if resp.OriginalWordCount != 60 || resp.SummaryWordCount != 3 {
		t.Errorf("Expected word counts 60/3, got %d/%d", resp.OriginalWordCount, resp.SummaryWordCount)
	}
	if resp.Timestamp == "" {
		t.Error("Expected timestamp in response")
	}
}

func TestSummarizeHandlerInvalidJSON(t *testing.T) {
	h := newSummarizeHandler(&mocks.MockSummarizeStrategy{Summary: "s"}, &mocks.MockHistory{})

	req := httptest.NewRequest("POST", "/api/v1/summarize", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestSummarizeHandlerShortTextEnvelope(t *testing.T) {
	h := newSummarizeHandler(&mocks.MockSummarizeStrategy{Summary: "s"}, &mocks.MockHistory{})

	w := postJSON(t, h, "/api/v1/summarize", map[string]interface{}{"text": "only a few words here"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success false")
	}
	if !strings.Contains(resp.Error, "20 words") {
		t.Errorf("Expected descriptive error, got %q", resp.Error)
	}
}

func TestSummarizeHandlerEmptyTextEnvelope(t *testing.T) {
	h := newSummarizeHandler(&mocks.MockSummarizeStrategy{Summary: "s"}, &mocks.MockHistory{})

	w := postJSON(t, h, "/api/v1/summarize", map[string]interface{}{"text": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestSummarizeHandlerAppendsHistory(t *testing.T) {
	history := &mocks.MockHistory{}
	h := newSummarizeHandler(&mocks.MockSummarizeStrategy{Summary: "s"}, history)

	postJSON(t, h, "/api/v1/summarize", map[string]interface{}{"text": wordText(60)})
	if len(history.Records) != 1 {
		t.Errorf("Expected 1 history record, got %d", len(history.Records))
	}
}
