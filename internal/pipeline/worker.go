package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knowledgehub/chapterize/internal/config"
	"github.com/knowledgehub/chapterize/internal/parser"
	"github.com/knowledgehub/chapterize/internal/scrub"
	"github.com/knowledgehub/chapterize/internal/sections"
	"github.com/knowledgehub/chapterize/internal/writer"
)

// Worker processes a single split job: parse, scrub, detect, write.
type Worker struct {
	cfg       config.Config
	overrides *config.Overrides
	writer    *writer.Writer
	log       *slog.Logger
}

func NewWorker(cfg config.Config, overrides *config.Overrides, w *writer.Writer, log *slog.Logger) *Worker {
	if overrides == nil {
		overrides = &config.Overrides{}
	}
	return &Worker{
		cfg:       cfg,
		overrides: overrides,
		writer:    w,
		log:       log,
	}
}

// EngineConfig builds the detection config from service config plus
// vocabulary overrides.
func EngineConfig(cfg config.Config, overrides *config.Overrides) sections.Config {
	vocab := sections.DefaultVocabulary()
	if overrides != nil {
		for w, n := range overrides.Vocabulary.WordNumbers {
			vocab.WordNumbers[w] = n
		}
		vocab = vocab.WithReferenceVerbs(overrides.Vocabulary.ReferenceVerbs)
	}
	return sections.Config{
		LookAheadLines:       cfg.LookAheadLines,
		TOCPageThreshold:     cfg.TOCPageThreshold,
		NonContiguousPageGap: cfg.NonContiguousPageGap,
		MaxTitleWords:        cfg.MaxTitleWords,
		StandaloneMarkers:    cfg.StandaloneMarkers,
		Vocabulary:           vocab,
	}
}

// Process runs the full split pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "book", job.Book)

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Resume: a book with a manifest on disk is already split.
	manifestPath := filepath.Join(w.cfg.OutputDir, job.Book, writer.ManifestFile)
	if !job.Force {
		if _, err := os.Stat(manifestPath); err == nil {
			log.Info("manifest exists, skipping", "path", manifestPath)
			job.SetStatus(StatusSkipped, "resume")
			return
		}
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, parser.Options{
		LinesPerPage:      w.cfg.LinesPerPage,
		FallbackPdftotext: w.cfg.PDFFallbackPdftotext,
	})
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	doc, err := p.Parse(bytes.NewReader(job.fileData), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetPages(len(doc.Pages), doc.PagesWithContent())

	rendered := doc.Render()
	job.ContentHash = ContentHashHex([]byte(rendered))

	// Phase 2: Scrub
	job.SetStatus(StatusScrubbing, "scrubbing")
	lines := doc.Lines()
	book := w.overrides.ForBook(job.Book)
	scrubber := scrub.New(scrub.Config{
		NavLabels:  book.NavLabels,
		JunkTokens: book.JunkTokens,
		Watermark:  book.Watermark,
	}, log)
	lines, removed := scrubber.Clean(lines)
	job.SetScrubbed(removed)

	// Phase 3: Detect
	job.SetStatus(StatusDetecting, "detecting")
	engine := sections.NewEngine(EngineConfig(w.cfg, w.overrides), log)
	res, err := engine.Detect(lines)
	if err != nil {
		log.Error("detection failed", "error", err)
		job.AddError(fmt.Sprintf("detect: %s", err))
		job.SetStatus(StatusFailed, "detecting")
		return
	}
	log.Info("detection complete",
		"sections", len(res.Sections),
		"last_page", res.LastPage)

	// Phase 4: Write
	job.SetStatus(StatusWriting, "writing")
	m, err := w.writer.Write(job.Book, doc, lines, &res)
	if err != nil {
		log.Error("write failed", "error", err)
		job.AddError(fmt.Sprintf("write: %s", err))
		job.SetStatus(StatusFailed, "writing")
		return
	}

	job.SetResults(len(res.Sections), len(m.Files))
	job.SetStatus(StatusCompleted, "done")
	log.Info("split complete", "files", len(m.Files))
}
