// Package writer materializes a boundary resolution as per-section text
// files plus a manifest.json describing exactly which line and page ranges
// went where.
package writer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/knowledgehub/chapterize/internal/pagedoc"
	"github.com/knowledgehub/chapterize/internal/sections"
)

// ManifestFile is the per-book manifest filename.
const ManifestFile = "manifest.json"

// Manifest records everything written for one book.
type Manifest struct {
	Book         string          `json:"book"`
	Source       string          `json:"source,omitempty"`
	GeneratedAt  time.Time       `json:"generated_at"`
	TotalLines   int             `json:"total_lines"`
	TotalPages   int             `json:"total_pages"`
	SectionCount int             `json:"section_count"`
	Files        []SectionRecord `json:"files"`
	Notes        []string        `json:"notes,omitempty"`
}

// SectionRecord describes one output file and the ranges it covers.
type SectionRecord struct {
	File          string       `json:"file"`
	Kind          string       `json:"kind"`
	Ordinal       int          `json:"ordinal,omitempty"`
	Title         string       `json:"title,omitempty"`
	Target        string       `json:"target"`
	Span          SpanRecord   `json:"span"`
	Continuations []SpanRecord `json:"continuations,omitempty"`
	Lines         int          `json:"lines"`
}

// SpanRecord is a contiguous line/page range.
type SpanRecord struct {
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
	StartPage int `json:"start_page"`
	EndPage   int `json:"end_page"`
}

func spanRecord(s sections.Span) SpanRecord {
	return SpanRecord{
		StartLine: s.StartLine,
		EndLine:   s.EndLine,
		StartPage: s.StartPage,
		EndPage:   s.EndPage,
	}
}

// Writer emits section files under outputDir/<book>/.
type Writer struct {
	outputDir string
	dryRun    bool
	log       *slog.Logger
}

// New builds a writer. In dry-run mode Write computes the manifest without
// touching the filesystem. A nil logger falls back to slog.Default().
func New(outputDir string, dryRun bool, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}
	return &Writer{outputDir: outputDir, dryRun: dryRun, log: log}
}

// Write materializes the resolution for one book and returns the manifest.
func (w *Writer) Write(book string, doc *pagedoc.Document, lines []string, res *sections.Resolution) (*Manifest, error) {
	dir := filepath.Join(w.outputDir, book)
	if !w.dryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	m := &Manifest{
		Book:         book,
		GeneratedAt:  time.Now().UTC(),
		TotalLines:   len(lines),
		TotalPages:   res.LastPage,
		SectionCount: len(res.Sections),
	}
	if doc != nil {
		m.Source = doc.Source
	}

	if len(res.Sections) == 0 {
		// No structure detected: keep everything in a single file so
		// no content is lost.
		name := "00_full_content.txt"
		if err := w.writeFile(dir, name, strings.Join(lines, "\n")); err != nil {
			return nil, err
		}
		m.Files = append(m.Files, SectionRecord{
			File:   name,
			Kind:   "full",
			Target: "full_content",
			Span: SpanRecord{
				StartLine: 0,
				EndLine:   max(len(lines)-1, 0),
				StartPage: 1,
				EndPage:   res.LastPage,
			},
			Lines: len(lines),
		})
		m.Notes = append(m.Notes, "no sections detected; wrote full content")
		if err := w.writeManifest(dir, m); err != nil {
			return nil, err
		}
		return m, nil
	}

	if res.FrontMatter != nil {
		name := "00_front_matter.txt"
		body := sliceLines(lines, res.FrontMatter.StartLine, res.FrontMatter.EndLine)
		if err := w.writeFile(dir, name, body); err != nil {
			return nil, err
		}
		m.Files = append(m.Files, SectionRecord{
			File:   name,
			Kind:   "front_matter",
			Target: "front_matter",
			Span:   spanRecord(*res.FrontMatter),
			Lines:  res.FrontMatter.EndLine - res.FrontMatter.StartLine + 1,
		})
	}

	for _, s := range res.Sections {
		name := s.Target + ".txt"
		var body strings.Builder
		body.WriteString(sectionHeader(s))
		body.WriteString(sliceLines(lines, s.StartLine, s.EndLine))

		total := s.EndLine - s.StartLine + 1
		for _, c := range s.Continuations {
			total += c.EndLine - c.StartLine + 1
		}
		for _, c := range s.Continuations {
			body.WriteString("\n\n")
			body.WriteString(continuationHeader(c))
			body.WriteString(sliceLines(lines, c.StartLine, c.EndLine))
		}

		if err := w.writeFile(dir, name, body.String()); err != nil {
			return nil, err
		}

		rec := SectionRecord{
			File:    name,
			Kind:    s.Kind.String(),
			Ordinal: s.Ordinal,
			Title:   s.Title,
			Target:  s.Target,
			Span: SpanRecord{
				StartLine: s.StartLine,
				EndLine:   s.EndLine,
				StartPage: s.StartPage,
				EndPage:   s.EndPage,
			},
			Lines: total,
		}
		for _, c := range s.Continuations {
			rec.Continuations = append(rec.Continuations, spanRecord(c))
		}
		m.Files = append(m.Files, rec)
		w.log.Info("wrote section",
			"book", book,
			"file", name,
			"lines", total,
			"pages", fmt.Sprintf("%d-%d", s.StartPage, s.EndPage))
	}

	if err := w.writeManifest(dir, m); err != nil {
		return nil, err
	}
	return m, nil
}

func sectionHeader(s sections.Section) string {
	label := strings.ToUpper(s.Kind.String())
	if s.Ordinal > 0 {
		label = fmt.Sprintf("%s %d", label, s.Ordinal)
	}
	if s.Title != "" {
		label = fmt.Sprintf("%s: %s", label, s.Title)
	}
	return fmt.Sprintf("%s\n%s\nPages %d-%d\n%s\n\n",
		pagedoc.Separator, label, s.StartPage, s.EndPage, pagedoc.Separator)
}

func continuationHeader(c sections.Span) string {
	return fmt.Sprintf("--- continued (pages %d-%d) ---\n\n", c.StartPage, c.EndPage)
}

// sliceLines joins the inclusive line range, clamping to valid indexes.
func sliceLines(lines []string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}
	if start > end {
		return ""
	}
	return strings.Join(lines[start:end+1], "\n")
}

func (w *Writer) writeFile(dir, name, content string) error {
	if w.dryRun {
		return nil
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (w *Writer) writeManifest(dir string, m *Manifest) error {
	if w.dryRun {
		return nil
	}
	f, err := os.Create(filepath.Join(dir, ManifestFile))
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()

	enc := sonic.ConfigDefault.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := sonic.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}
