package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8090" {
		t.Errorf("Port = %q, want 8090", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("JobTTL = %v, want 1h", cfg.JobTTL)
	}
	if cfg.LookAheadLines != 15 || cfg.TOCPageThreshold != 3 || cfg.NonContiguousPageGap != 30 || cfg.MaxTitleWords != 8 {
		t.Errorf("detection defaults = %d/%d/%d/%d, want 15/3/30/8",
			cfg.LookAheadLines, cfg.TOCPageThreshold, cfg.NonContiguousPageGap, cfg.MaxTitleWords)
	}
	if cfg.StandaloneMarkers {
		t.Error("StandaloneMarkers should default to false")
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("PDFFallbackPdftotext should default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("TOC_PAGE_THRESHOLD", "5")
	t.Setenv("STANDALONE_MARKERS", "true")
	t.Setenv("JOB_TTL", "30m")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d", cfg.WorkerCount)
	}
	if cfg.TOCPageThreshold != 5 {
		t.Errorf("TOCPageThreshold = %d", cfg.TOCPageThreshold)
	}
	if !cfg.StandaloneMarkers {
		t.Error("StandaloneMarkers not applied")
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("JobTTL = %v", cfg.JobTTL)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("MAX_TITLE_WORDS", "-3")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want fallback 4", cfg.WorkerCount)
	}
	if cfg.MaxTitleWords != 8 {
		t.Errorf("MaxTitleWords = %d, want fallback 8", cfg.MaxTitleWords)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty OutputDir")
	}
}

func TestLoadOverrides_EmptyPath(t *testing.T) {
	o, err := LoadOverrides("")
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if got := o.ForBook("anything"); len(got.NavLabels) != 0 {
		t.Errorf("ForBook on empty overrides = %+v", got)
	}
}

func TestLoadOverrides_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `
strip_prefixes:
  - "scan_"
books:
  players_handbook:
    nav_labels:
      - Combat
      - Magic
    watermark: true
vocabulary:
  word_numbers:
    thirteen: 13
  reference_verbs:
    - outlines
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	book := o.ForBook("players_handbook")
	if len(book.NavLabels) != 2 || !book.Watermark {
		t.Errorf("book override = %+v", book)
	}
	if o.Vocabulary.WordNumbers["thirteen"] != 13 {
		t.Errorf("vocabulary override = %+v", o.Vocabulary)
	}
	if len(o.StripPrefixes) != 1 || o.StripPrefixes[0] != "scan_" {
		t.Errorf("strip prefixes = %v", o.StripPrefixes)
	}
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
