package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Filesystem layout
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Parsing
	PDFFallbackPdftotext bool
	LinesPerPage         int

	// Detection thresholds
	LookAheadLines       int
	TOCPageThreshold     int
	NonContiguousPageGap int
	MaxTitleWords        int
	StandaloneMarkers    bool

	// Per-book overrides file (YAML), optional.
	OverridesPath string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("CHAPTERIZE_API_KEY"),

		InputDir:  envOr("INPUT_DIR", "books"),
		OutputDir: envOr("OUTPUT_DIR", "extracted"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 104857600), // 100MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
		LinesPerPage:         envInt("LINES_PER_PAGE", 60),

		LookAheadLines:       envInt("LOOK_AHEAD_LINES", 15),
		TOCPageThreshold:     envInt("TOC_PAGE_THRESHOLD", 3),
		NonContiguousPageGap: envInt("NON_CONTIGUOUS_PAGE_GAP", 30),
		MaxTitleWords:        envInt("MAX_TITLE_WORDS", 8),
		StandaloneMarkers:    envBool("STANDALONE_MARKERS", false),

		OverridesPath: os.Getenv("OVERRIDES_PATH"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 104857600
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.LinesPerPage <= 0 {
		cfg.LinesPerPage = 60
	}
	if cfg.LookAheadLines <= 0 {
		cfg.LookAheadLines = 15
	}
	if cfg.TOCPageThreshold <= 0 {
		cfg.TOCPageThreshold = 3
	}
	if cfg.NonContiguousPageGap <= 0 {
		cfg.NonContiguousPageGap = 30
	}
	if cfg.MaxTitleWords <= 0 {
		cfg.MaxTitleWords = 8
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
