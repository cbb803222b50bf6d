// Package pdfdecoder adapts third-party PDF libraries to domain.Decoder.
package pdfdecoder

import (
	"fmt"
	"strings"

	"pdf-text-extractor/internal/domain"
)

// Supported decoder names
const (
	NameFitz       = "fitz"
	NameLedongthuc = "ledongthuc"
)

// New returns the decoder registered under name.
func New(name string, logger domain.Logger) (domain.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameFitz, "mupdf":
		return NewFitzDecoder(logger), nil
	case NameLedongthuc, "pure-go":
		return NewLedongthucDecoder(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDecoder, name)
	}
}

// NewOrDefault is New with a fallback to the fitz decoder for unknown names.
func NewOrDefault(name string, logger domain.Logger) domain.Decoder {
	decoder, err := New(name, logger)
	if err != nil {
		logger.Warn("Unknown PDF decoder, falling back", "requested", name, "decoder", NameFitz)
		return NewFitzDecoder(logger)
	}
	return decoder
}
