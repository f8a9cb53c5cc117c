package repository

import (
	"strings"
	"testing"
)

func TestDocumentReaderTxt(t *testing.T) {
	reader := NewDocumentReader()

	content, err := reader.Read("notes.txt", []byte("plain text body"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if content != "plain text body" {
		t.Errorf("Expected raw content, got %q", content)
	}
}

func TestDocumentReaderExtensionCaseInsensitive(t *testing.T) {
	reader := NewDocumentReader()

	if _, err := reader.Read("NOTES.TXT", []byte("x")); err != nil {
		t.Errorf("Expected uppercase extension accepted, got %v", err)
	}
}

func TestDocumentReaderUnsupportedFormat(t *testing.T) {
	reader := NewDocumentReader()

	_, err := reader.Read("image.png", []byte{0x89, 0x50})
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("Expected descriptive error, got %q", err.Error())
	}
}

func TestDocumentReaderCorruptDocx(t *testing.T) {
	reader := NewDocumentReader()

	_, err := reader.Read("report.docx", []byte("not a zip archive"))
	if err == nil {
		t.Fatal("Expected error for corrupt DOCX")
	}
}

func TestDocumentReaderCorruptPDF(t *testing.T) {
	reader := NewDocumentReader()

	_, err := reader.Read("report.pdf", []byte("not a pdf"))
	if err == nil {
		t.Fatal("Expected error for corrupt PDF")
	}
}
