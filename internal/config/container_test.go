package config

import "testing"

func TestNewContainerWithConfig(t *testing.T) {
	cfg := &AppConfig{
		UploadPath:  t.TempDir(),
		MaxFileSize: 1024,
		LogLevel:    "error",
		PDFDecoder:  "ledongthuc",
	}

	c := NewContainerWithConfig(cfg)

	if c.GetConfig() != cfg {
		t.Fatalf("expected config to be kept")
	}
	if c.GetLogger() == nil || c.UploadStore == nil || c.ExtractionService == nil {
		t.Fatalf("expected all dependencies to be wired: %+v", c)
	}
	if c.Decoder.Name() != "ledongthuc" {
		t.Fatalf("expected ledongthuc decoder, got %s", c.Decoder.Name())
	}
}

func TestNewContainerWithConfig_UnknownDecoderFallsBack(t *testing.T) {
	c := NewContainerWithConfig(&AppConfig{UploadPath: t.TempDir(), LogLevel: "error", PDFDecoder: "nope"})

	if c.Decoder.Name() != "fitz" {
		t.Fatalf("expected fitz fallback, got %s", c.Decoder.Name())
	}
}
