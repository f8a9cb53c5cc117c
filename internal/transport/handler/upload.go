package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/docdigest/docdigest/internal/repository"
	"github.com/docdigest/docdigest/internal/textproc"
	"github.com/docdigest/docdigest/internal/transport/response"
)

// maxUploadBytes bounds uploaded document size.
const maxUploadBytes = 10 << 20

// Upload handles POST /upload requests: it extracts plain text from an
// uploaded document so the client can submit it for summarization.
type Upload struct {
	reader *repository.DocumentReader
}

// NewUpload creates the upload handler.
func NewUpload(reader *repository.DocumentReader) *Upload {
	return &Upload{reader: reader}
}

type uploadResponse struct {
	Success   bool   `json:"success"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

func (h *Upload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.WriteBadRequest(w, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.WriteBadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		response.WriteBadRequest(w, "No file selected")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.WriteInternalError(w, fmt.Sprintf("File upload failed: %v", err))
		return
	}

	content, err := h.reader.Read(header.Filename, data)
	if err != nil {
		response.WriteBadRequest(w, fmt.Sprintf("Error reading file: %v", err))
		return
	}

	response.WriteJSON(w, http.StatusOK, uploadResponse{
		Success:   true,
		Content:   content,
		WordCount: textproc.WordCount(content),
	})
}
