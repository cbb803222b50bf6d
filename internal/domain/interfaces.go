package domain

import (
	"context"
	"net/http"
	"time"
)

// Decoder turns raw PDF bytes into text and a page count
type Decoder interface {
	Decode(ctx context.Context, content []byte) (*DecodedDocument, error)
	Name() string
}

// UploadStore parses a multipart request and persists its file parts
type UploadStore interface {
	Parse(w http.ResponseWriter, r *http.Request) (*UploadForm, error)
}

// ExtractionService reads, decodes and segments an uploaded file.
// The file is removed from disk before Extract returns.
type ExtractionService interface {
	Extract(ctx context.Context, file *UploadedFile, opts ExtractOptions) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetPDFDecoder() string
	GetPageMarkers() bool
	GetCORSOrigins() []string
	GetShutdownTimeout() time.Duration
}
