package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pdf-text-extractor/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	UploadPath      string
	MaxFileSize     int64
	LogLevel        string
	PDFDecoder      string
	PageMarkers     bool
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadPath:      getEnvOrDefault("UPLOAD_PATH", filepath.Join(os.TempDir(), "pdf-text-extractor")),
		MaxFileSize:     getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		PDFDecoder:      getEnvOrDefault("PDF_DECODER", "fitz"),
		PageMarkers:     getEnvBoolOrDefault("PAGE_MARKERS", true),
		CORSOrigins:     getEnvListOrDefault("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the directory temporary uploads are spooled to
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxFileSize returns the maximum allowed request body size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFDecoder returns the name of the decoder backend
func (c *AppConfig) GetPDFDecoder() string {
	return c.PDFDecoder
}

// GetPageMarkers reports whether output is page-annotated by default
func (c *AppConfig) GetPageMarkers() bool {
	return c.PageMarkers
}

// GetCORSOrigins returns the allowed CORS origins
func (c *AppConfig) GetCORSOrigins() []string {
	return c.CORSOrigins
}

// GetShutdownTimeout returns how long graceful shutdown may take
func (c *AppConfig) GetShutdownTimeout() time.Duration {
	return c.ShutdownTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
