package handler

import (
	"encoding/json"
	"net/http"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeFailure maps err onto its status code and a failed ExtractionResult
func writeFailure(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.GetStatusCode(err), domain.Failed(apperrors.PublicMessage(err)))
}
