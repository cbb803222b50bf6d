package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"

	"github.com/google/uuid"
)

const (
	// maxParts bounds the number of parts read from one body
	maxParts = 32
	// maxFieldBytes bounds a single non-file field value
	maxFieldBytes = 1 << 20
)

// Store spools multipart file parts to uniquely named files under dir
type Store struct {
	dir         string
	maxBodySize int64
	logger      domain.Logger
}

// NewStore creates a new upload store
func NewStore(dir string, maxBodySize int64, logger domain.Logger) *Store {
	return &Store{
		dir:         dir,
		maxBodySize: maxBodySize,
		logger:      logger,
	}
}

// Parse reads the whole multipart body of r. Every file part is written to
// disk and returned in the form. On failure, files already written are
// removed and a form-parse AppError is returned.
func (s *Store) Parse(w http.ResponseWriter, r *http.Request) (*domain.UploadForm, error) {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, apperrors.NewFormParseError(fmt.Errorf("failed to create upload dir: %w", err))
	}

	if s.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBodySize)
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, apperrors.NewFormParseError(err)
	}

	form := domain.NewUploadForm()
	parts := 0
	for {
		part, err := reader.NextPart()
		// A wrapped EOF means the closing boundary never arrived.
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, s.abort(form, err)
		}

		name := part.FormName()
		if name == "" {
			part.Close()
			continue
		}

		parts++
		if parts > maxParts {
			part.Close()
			return nil, s.abort(form, domain.ErrTooManyParts)
		}

		if part.FileName() == "" {
			value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes+1))
			part.Close()
			if err != nil {
				return nil, s.abort(form, err)
			}
			if len(value) > maxFieldBytes {
				return nil, s.abort(form, domain.ErrFieldTooLarge)
			}
			form.Fields[name] = append(form.Fields[name], string(value))
			continue
		}

		file, err := s.spool(part, name)
		part.Close()
		if file != nil {
			form.Files[name] = append(form.Files[name], file)
		}
		if err != nil {
			return nil, s.abort(form, err)
		}
	}

	return form, nil
}

// spool copies a file part to a new file. On a copy error the partial
// file is still returned so the caller can remove it.
func (s *Store) spool(part *multipart.Part, field string) (*domain.UploadedFile, error) {
	path := filepath.Join(s.dir, uuid.NewString()+".pdf")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	file := &domain.UploadedFile{
		FieldName:        field,
		OriginalFilename: filepath.Base(part.FileName()),
		ContentType:      part.Header.Get("Content-Type"),
		Path:             path,
	}

	n, copyErr := io.Copy(f, part)
	file.Size = n
	closeErr := f.Close()
	if copyErr != nil {
		return file, copyErr
	}
	if closeErr != nil {
		return file, closeErr
	}

	s.logger.Debug("Upload spooled", "field", field, "filename", file.OriginalFilename, "size", n, "path", path)
	return file, nil
}

func (s *Store) abort(form *domain.UploadForm, cause error) error {
	if err := form.RemoveExcept(nil); err != nil {
		s.logger.Error("Error removing partial uploads", apperrors.NewCleanupError(s.dir, err))
	}
	return apperrors.NewFormParseError(cause)
}
