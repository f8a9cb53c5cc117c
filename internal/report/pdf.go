// Package report renders summarization results into downloadable documents.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/docdigest/docdigest/internal/entity"
)

// Data is the payload a report is rendered from. It mirrors the success
// envelope fields of a summarization result.
type Data struct {
	Timestamp         string          `json:"timestamp"`
	OriginalWordCount int             `json:"original_word_count"`
	SummaryWordCount  int             `json:"summary_word_count"`
	CompressionRatio  float64         `json:"compression_ratio"`
	Summary           string          `json:"summary"`
	Entities          []entity.Entity `json:"entities"`
}

// Assembler turns summary results into PDF reports.
type Assembler struct{}

// NewAssembler creates a report assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// RenderPDF renders data into a single-column PDF report.
func (a *Assembler) RenderPDF(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Summary Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", data.Timestamp))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Original Words: %d", data.OriginalWordCount))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Summary Words: %d", data.SummaryWordCount))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Compression: %.1f%%", data.CompressionRatio))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Summary:")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, data.Summary, "", "L", false)

	if len(data.Entities) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Entities:")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, e := range data.Entities {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s: %s", e.Label, e.Text), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF report: %w", err)
	}
	return buf.Bytes(), nil
}
