package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/knowledgehub/chapterize/internal/pagedoc"
)

// Parser converts raw document bytes into a page-tagged Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*pagedoc.Document, error)
}

// Options tune parser behavior. The zero value uses sensible defaults.
type Options struct {
	// LinesPerPage controls synthetic pagination for formats without
	// native page boundaries. Zero means the default of 60.
	LinesPerPage int
	// FallbackPdftotext enables shelling out to pdftotext when the Go
	// PDF library fails.
	FallbackPdftotext bool
}

const defaultLinesPerPage = 60

func (o Options) linesPerPage() int {
	if o.LinesPerPage > 0 {
		return o.LinesPerPage
	}
	return defaultLinesPerPage
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{Options: opts}, nil
	case ".md", ".markdown":
		return &MarkdownParser{Options: opts}, nil
	case ".html", ".htm":
		return &HTMLParser{Options: opts}, nil
	case ".pdf":
		return &PDFParser{Options: opts}, nil
	case ".docx":
		return &DOCXParser{Options: opts}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// paginate groups a flat line stream into fixed-size synthetic pages.
// Pages are numbered from 1 and blank pages are skipped.
func paginate(lines []string, perPage int, method string) []pagedoc.Page {
	var pages []pagedoc.Page
	num := 0
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		num++
		text := strings.Join(lines[start:end], "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, pagedoc.Page{
			Number:  num,
			Text:    text,
			Method:  method,
			HasText: true,
		})
	}
	return pages
}

// pagesFromText builds pages from raw text, honoring form feeds as native
// page breaks and falling back to fixed-size pagination otherwise.
func pagesFromText(text string, perPage int, method string) []pagedoc.Page {
	if strings.Contains(text, "\f") {
		var pages []pagedoc.Page
		for i, chunk := range strings.Split(text, "\f") {
			if strings.TrimSpace(chunk) == "" {
				continue
			}
			pages = append(pages, pagedoc.Page{
				Number:  i + 1,
				Text:    strings.TrimRight(chunk, "\n"),
				Method:  method,
				HasText: true,
			})
		}
		return pages
	}
	return paginate(strings.Split(text, "\n"), perPage, method)
}

// baseTitle strips the extension from a filename for use as document title.
func baseTitle(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
