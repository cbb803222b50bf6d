package handler

import (
	"net/http"

	"pdf-text-extractor/internal/handler/web"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(extractHandler *ExtractHandler, requestLogger func(http.Handler) http.Handler, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.Use(requestLogger)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"pdf-text-extractor"}`))
	}).Methods(http.MethodGet)

	// Every method is routed so the handler can answer 405 with a JSON body.
	router.HandleFunc("/api/extract-pdf", extractHandler.ExtractPDF)

	router.HandleFunc("/", web.Index).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
