package pdfdecoder

import (
	"context"
	"fmt"
	"strings"

	"pdf-text-extractor/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzDecoder decodes PDFs with MuPDF through go-fitz
type FitzDecoder struct {
	logger domain.Logger
}

// NewFitzDecoder creates a new MuPDF-backed decoder
func NewFitzDecoder(logger domain.Logger) *FitzDecoder {
	return &FitzDecoder{logger: logger}
}

// Name returns the decoder name
func (d *FitzDecoder) Name() string {
	return NameFitz
}

// Decode extracts the text of every page, pages separated by a blank line.
// A page that fails to extract contributes empty text.
func (d *FitzDecoder) Decode(ctx context.Context, content []byte) (*domain.DecodedDocument, error) {
	if len(content) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := doc.Text(pageNum)
		if err != nil {
			d.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			text = ""
		}
		pages = append(pages, strings.TrimRight(text, "\n"))
	}

	return &domain.DecodedDocument{
		RawText:   strings.Join(pages, "\n\n"),
		PageCount: numPages,
	}, nil
}
