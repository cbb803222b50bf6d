package domain

import (
	"errors"
	"os"
	"sort"
)

// UploadedFile is a file part persisted to disk by the upload store
type UploadedFile struct {
	FieldName        string `json:"field_name"`
	OriginalFilename string `json:"original_filename"`
	ContentType      string `json:"content_type"`
	Size             int64  `json:"size"`
	Path             string `json:"path"`
}

// UploadForm is a parsed multipart body. A field may carry any number of files.
type UploadForm struct {
	Fields map[string][]string
	Files  map[string][]*UploadedFile
}

// NewUploadForm creates an empty form
func NewUploadForm() *UploadForm {
	return &UploadForm{
		Fields: make(map[string][]string),
		Files:  make(map[string][]*UploadedFile),
	}
}

// First resolves a file field to its first file, or nil when the field is
// absent, empty, or its first entry has no location on disk.
func (f *UploadForm) First(name string) *UploadedFile {
	if f == nil {
		return nil
	}
	files := f.Files[name]
	if len(files) == 0 || files[0] == nil || files[0].Path == "" {
		return nil
	}
	return files[0]
}

// FieldNames returns the names of all value fields, sorted
func (f *UploadForm) FieldNames() []string {
	return sortedKeys(f.Fields)
}

// FileFieldNames returns the names of all file fields, sorted
func (f *UploadForm) FileFieldNames() []string {
	return sortedKeys(f.Files)
}

// AllFiles returns every persisted file in field-name order
func (f *UploadForm) AllFiles() []*UploadedFile {
	var out []*UploadedFile
	for _, name := range f.FileFieldNames() {
		out = append(out, f.Files[name]...)
	}
	return out
}

// RemoveExcept deletes every persisted file other than keep.
// Files already gone are not reported.
func (f *UploadForm) RemoveExcept(keep *UploadedFile) error {
	if f == nil {
		return nil
	}
	var errs []error
	for _, file := range f.AllFiles() {
		if file == nil || file == keep || file.Path == "" {
			continue
		}
		if err := os.Remove(file.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
