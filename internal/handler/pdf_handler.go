// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"
	"strconv"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"

	"github.com/google/uuid"
)

// PDFField is the multipart field the upload is read from
const PDFField = "pdf"

// ExtractHandler handles PDF text extraction requests
type ExtractHandler struct {
	store       domain.UploadStore
	extractor   domain.ExtractionService
	pageMarkers bool
	logger      domain.Logger
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(store domain.UploadStore, extractor domain.ExtractionService, pageMarkers bool, logger domain.Logger) *ExtractHandler {
	return &ExtractHandler{
		store:       store,
		extractor:   extractor,
		pageMarkers: pageMarkers,
		logger:      logger,
	}
}

// ExtractPDF accepts a multipart upload with a "pdf" file field and
// responds with the extracted text.
func (h *ExtractHandler) ExtractPDF(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With("request_id", uuid.NewString())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodPost)
		writeFailure(w, apperrors.NewMethodNotAllowedError(r.Method))
		return
	}

	form, err := h.store.Parse(w, r)
	if err != nil {
		log.Error("Error parsing form", err)
		writeFailure(w, err)
		return
	}

	log.Info("Received fields", "fields", form.FieldNames())
	log.Info("Received files", "files", describeFiles(form))

	file := form.First(PDFField)
	defer func() {
		if err := form.RemoveExcept(file); err != nil {
			log.Error("Error deleting unused uploads", apperrors.NewCleanupError("", err))
		}
	}()

	if file == nil {
		log.Warn("No valid PDF file uploaded", "file_fields", form.FileFieldNames())
		writeFailure(w, apperrors.NewMissingFileError())
		return
	}

	log.Info("File received", "filename", file.OriginalFilename, "size", file.Size)

	text, err := h.extractor.Extract(r.Context(), file, domain.ExtractOptions{
		PageMarkers: h.markers(r),
	})
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.Succeeded(text))
}

// markers resolves page annotation from the "markers" query parameter,
// falling back to the configured default.
func (h *ExtractHandler) markers(r *http.Request) bool {
	if v := r.URL.Query().Get("markers"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return h.pageMarkers
}

func describeFiles(form *domain.UploadForm) []map[string]interface{} {
	files := form.AllFiles()
	out := make([]map[string]interface{}, 0, len(files))
	for _, f := range files {
		out = append(out, map[string]interface{}{
			"field":    f.FieldName,
			"filename": f.OriginalFilename,
			"size":     f.Size,
		})
	}
	return out
}
