package config

import (
	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/internal/infra/pdfdecoder"
	"pdf-text-extractor/internal/infra/upload"
	"pdf-text-extractor/internal/service"
	"pdf-text-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	UploadStore       domain.UploadStore
	Decoder           domain.Decoder
	ExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the application around an existing config
func NewContainerWithConfig(config domain.Config) *Container {
	appLogger := logger.NewLogger(config.GetLogLevel())

	decoder := pdfdecoder.NewOrDefault(config.GetPDFDecoder(), appLogger)
	uploadStore := upload.NewStore(config.GetUploadPath(), config.GetMaxFileSize(), appLogger)
	extractionService := service.NewPDFExtractionService(decoder, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		UploadStore:       uploadStore,
		Decoder:           decoder,
		ExtractionService: extractionService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
