package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/atstailor/resume-tailor/internal/domain"
	"github.com/atstailor/resume-tailor/internal/extract"
)

// HandleParsePDF extracts plain text from an uploaded PDF.
// POST /api/parse-pdf
// Request:  multipart form with a "file" field
// Response: 200 {"text":"..."}
func HandleParsePDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "No file uploaded.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read uploaded file", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to read uploaded file.")
		return
	}

	text, err := extract.Text(data)
	if err != nil {
		if errors.Is(err, domain.ErrExtraction) {
			slog.Error("pdf extraction", "error", err)
			writeError(w, http.StatusInternalServerError, "extraction_failed", "Failed to parse PDF.")
			return
		}
		slog.Error("pdf extraction", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to parse PDF.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
