package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{})             {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{})            {}
func (nopLogger) Warn(msg string, fields ...interface{})             {}
func (l nopLogger) With(fields ...interface{}) domain.Logger         { return l }

func multipartRequest(t *testing.T, build func(mw *multipart.Writer)) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	build(mw)
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/extract-pdf", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func writeFile(t *testing.T, mw *multipart.Writer, field, name string, content []byte) {
	t.Helper()
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	return entries
}

func TestStore_Parse_FilesAndFields(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20, nopLogger{})

	req := multipartRequest(t, func(mw *multipart.Writer) {
		_ = mw.WriteField("note", "hello")
		writeFile(t, mw, "pdf", "report.pdf", []byte("%PDF-1.4 first"))
		writeFile(t, mw, "pdf", "second.pdf", []byte("%PDF-1.4 second"))
	})

	form, err := store.Parse(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := form.Fields["note"]; len(got) != 1 || got[0] != "hello" {
		t.Fatalf("unexpected fields: %v", form.Fields)
	}
	if len(form.Files["pdf"]) != 2 {
		t.Fatalf("expected 2 files under pdf, got %d", len(form.Files["pdf"]))
	}

	first := form.First("pdf")
	if first == nil {
		t.Fatalf("expected first file")
	}
	if first.OriginalFilename != "report.pdf" || first.Size != int64(len("%PDF-1.4 first")) {
		t.Fatalf("unexpected file metadata: %+v", first)
	}
	if !strings.HasPrefix(first.Path, dir) {
		t.Fatalf("expected file under %s, got %s", dir, first.Path)
	}
	content, err := os.ReadFile(first.Path)
	if err != nil || string(content) != "%PDF-1.4 first" {
		t.Fatalf("unexpected spooled content %q: %v", content, err)
	}
	if len(dirEntries(t, dir)) != 2 {
		t.Fatalf("expected both files on disk")
	}
	if form.Files["pdf"][0].Path == form.Files["pdf"][1].Path {
		t.Fatalf("expected distinct temporary paths")
	}
}

func TestStore_Parse_NotMultipart(t *testing.T) {
	store := NewStore(t.TempDir(), 1<<20, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/extract-pdf", strings.NewReader(`{"pdf":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := store.Parse(httptest.NewRecorder(), req)
	if !apperrors.IsType(err, apperrors.ErrorTypeFormParse) {
		t.Fatalf("expected form parse error, got %v", err)
	}
}

func TestStore_Parse_TruncatedBodyRemovesFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20, nopLogger{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	writeFile(t, mw, "pdf", "a.pdf", []byte("%PDF-1.4 complete part"))
	writeFile(t, mw, "pdf", "b.pdf", bytes.Repeat([]byte("x"), 4096))
	// No Close: the closing boundary is missing and the last part is cut short.
	truncated := body.Bytes()[:body.Len()-100]

	req := httptest.NewRequest(http.MethodPost, "/api/extract-pdf", bytes.NewReader(truncated))
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, err := store.Parse(httptest.NewRecorder(), req)
	if !apperrors.IsType(err, apperrors.ErrorTypeFormParse) {
		t.Fatalf("expected form parse error, got %v", err)
	}
	if entries := dirEntries(t, dir); len(entries) != 0 {
		t.Fatalf("expected partial uploads to be removed, found %d files", len(entries))
	}
}

func TestStore_Parse_BodyTooLarge(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 512, nopLogger{})

	req := multipartRequest(t, func(mw *multipart.Writer) {
		writeFile(t, mw, "pdf", "big.pdf", bytes.Repeat([]byte("a"), 4096))
	})

	_, err := store.Parse(httptest.NewRecorder(), req)
	if !apperrors.IsType(err, apperrors.ErrorTypeFormParse) {
		t.Fatalf("expected form parse error, got %v", err)
	}
	if apperrors.PublicMessage(err) != "Error parsing form data" {
		t.Fatalf("unexpected message: %s", apperrors.PublicMessage(err))
	}
	if entries := dirEntries(t, dir); len(entries) != 0 {
		t.Fatalf("expected no files left behind, found %d", len(entries))
	}
}

func TestStore_Parse_TooManyParts(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, 1<<20, nopLogger{})

	req := multipartRequest(t, func(mw *multipart.Writer) {
		for i := 0; i <= maxParts; i++ {
			writeFile(t, mw, "pdf", "x.pdf", []byte("x"))
		}
	})

	_, err := store.Parse(httptest.NewRecorder(), req)
	if !apperrors.IsType(err, apperrors.ErrorTypeFormParse) {
		t.Fatalf("expected form parse error, got %v", err)
	}
	if entries := dirEntries(t, dir); len(entries) != 0 {
		t.Fatalf("expected spooled files to be removed, found %d", len(entries))
	}
}

func TestStore_Parse_NoPDFField(t *testing.T) {
	store := NewStore(t.TempDir(), 1<<20, nopLogger{})
	req := multipartRequest(t, func(mw *multipart.Writer) {
		_ = mw.WriteField("title", "no file here")
	})

	form, err := store.Parse(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.First("pdf") != nil {
		t.Fatalf("expected no pdf file")
	}
}
