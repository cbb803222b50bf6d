package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// PDFExtractionService implements the extraction pipeline for one uploaded file
type PDFExtractionService struct {
	decoder  domain.Decoder
	logger   domain.Logger
	readFile func(string) ([]byte, error)
	remove   func(string) error
}

// NewPDFExtractionService creates a new extraction service
func NewPDFExtractionService(decoder domain.Decoder, logger domain.Logger) *PDFExtractionService {
	return &PDFExtractionService{
		decoder:  decoder,
		logger:   logger,
		readFile: os.ReadFile,
		remove:   os.Remove,
	}
}

// Extract reads the uploaded file, decodes it and renders its text.
// The file is removed on every return path, including a decoder panic.
func (s *PDFExtractionService) Extract(ctx context.Context, file *domain.UploadedFile, opts domain.ExtractOptions) (string, error) {
	if file == nil || file.Path == "" {
		return "", apperrors.NewMissingFileError()
	}
	defer s.release(file.Path)

	content, err := s.readFile(file.Path)
	if err != nil {
		s.logger.Error("Error reading uploaded file", err, "path", file.Path)
		return "", apperrors.NewDecodeError(err)
	}
	s.logger.Info("File read successfully, parsing PDF...", "size", len(content), "decoder", s.decoder.Name())

	doc, err := s.decode(ctx, content)
	if err != nil {
		s.logger.Error("Error parsing PDF", err, "filename", file.OriginalFilename)
		return "", apperrors.NewDecodeError(err)
	}
	s.logger.Info("PDF parsed successfully", "text_length", len(doc.RawText), "page_count", doc.PageCount)

	if !opts.PageMarkers {
		return doc.RawText, nil
	}
	return AnnotatePages(doc.RawText, doc.PageCount), nil
}

// decode runs the decoder and converts a panic inside it into an error
func (s *PDFExtractionService) decode(ctx context.Context, content []byte) (doc *domain.DecodedDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			if rErr, ok := r.(error); ok {
				err = rErr
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	doc, err = s.decoder.Decode(ctx, content)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.PageCount < 1 {
		return nil, domain.ErrNoPages
	}
	return doc, nil
}

// release deletes the temporary file. Failures are logged and dropped.
func (s *PDFExtractionService) release(path string) {
	if err := s.remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Temporary file already gone", "path", path)
			return
		}
		s.logger.Error("Error deleting temporary file", apperrors.NewCleanupError(path, err), "path", path)
		return
	}
	s.logger.Info("Temporary file deleted", "path", path)
}
