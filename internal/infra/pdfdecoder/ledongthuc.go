package pdfdecoder

import (
	"bytes"
	"context"
	"fmt"

	"pdf-text-extractor/internal/domain"

	"github.com/ledongthuc/pdf"
)

// LedongthucDecoder decodes PDFs with the pure-Go ledongthuc/pdf reader
type LedongthucDecoder struct {
	logger domain.Logger
}

// NewLedongthucDecoder creates a new pure-Go decoder
func NewLedongthucDecoder(logger domain.Logger) *LedongthucDecoder {
	return &LedongthucDecoder{logger: logger}
}

// Name returns the decoder name
func (d *LedongthucDecoder) Name() string {
	return NameLedongthuc
}

// Decode extracts the document's plain text in one pass
func (d *LedongthucDecoder) Decode(ctx context.Context, content []byte) (*domain.DecodedDocument, error) {
	if len(content) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}

	d.logger.Debug("PDF decoded", "decoder", NameLedongthuc, "pages", reader.NumPage(), "text_length", buf.Len())

	return &domain.DecodedDocument{
		RawText:   buf.String(),
		PageCount: reader.NumPage(),
	}, nil
}
