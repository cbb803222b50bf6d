package domain

import "errors"

// Domain errors
var (
	ErrEmptyDocument  = errors.New("empty document")
	ErrNoPages        = errors.New("document has no pages")
	ErrTooManyParts   = errors.New("too many multipart parts")
	ErrFieldTooLarge  = errors.New("form field value too large")
	ErrUnknownDecoder = errors.New("unknown pdf decoder")
)
