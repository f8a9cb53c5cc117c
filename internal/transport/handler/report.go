package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/docdigest/docdigest/internal/report"
	"github.com/docdigest/docdigest/internal/transport/response"
)

// Report handles POST /report requests: it renders a summarization result
// into a downloadable PDF.
type Report struct {
	assembler *report.Assembler
	now       func() time.Time
}

// NewReport creates the report handler.
func NewReport(assembler *report.Assembler) *Report {
	return &Report{assembler: assembler, now: time.Now}
}

func (h *Report) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var data report.Data
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	pdfBytes, err := h.assembler.RenderPDF(data)
	if err != nil {
		response.WriteInternalError(w, fmt.Sprintf("PDF generation failed: %v", err))
		return
	}

	filename := fmt.Sprintf("summary_report_%s.pdf", h.now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
