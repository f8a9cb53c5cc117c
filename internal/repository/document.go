package repository

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// DocumentReader extracts plain text from uploaded documents. Unsupported
// formats and unreadable files yield descriptive errors, never panics.
type DocumentReader struct{}

// NewDocumentReader creates a document reader.
func NewDocumentReader() *DocumentReader {
	return &DocumentReader{}
}

// Read extracts the text content of an uploaded file by extension.
func (d *DocumentReader) Read(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return string(data), nil
	case ".docx":
		return readDocx(data)
	case ".pdf":
		return readPDF(data)
	default:
		return "", fmt.Errorf("unsupported file format %q: please use .txt, .docx, or .pdf", filepath.Ext(filename))
	}
}

func readDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing DOCX file: %w", err)
	}

	var b strings.Builder
	for _, item := range doc.Document.Body.Items {
		if s, ok := item.(fmt.Stringer); ok {
			b.WriteString(s.String())
			b.WriteString("\n")
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("no text content extracted from DOCX file")
	}
	return text, nil
}

func readPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs; keep that inside
	// this call as an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing PDF file: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing PDF file: %w", err)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			b.WriteString(t.S)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	text = strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("no text content extracted from PDF file")
	}
	return text, nil
}
