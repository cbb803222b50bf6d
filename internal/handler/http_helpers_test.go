package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "pdf-text-extractor/pkg/errors"
)

func TestWriteFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	writeFailure(rr, apperrors.NewMissingFileError())

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"success":false,"error":"No valid PDF file uploaded"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteFailure_UnconvertedError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeFailure(rr, errors.New("raw library fault"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if strings.Contains(rr.Body.String(), "raw library fault") {
		t.Fatalf("unconverted error text leaked: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"success":false`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}
