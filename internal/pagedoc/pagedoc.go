package pagedoc

import (
	"strconv"
	"strings"
)

// Page is the text recovered from a single physical page.
type Page struct {
	Number  int    // 1-based page number from the source document
	Text    string // Extracted text (may be empty for image-only pages)
	Method  string // Extraction method that produced the text ("pdflib", "pdftotext", "markdown", ...)
	HasText bool   // Whether extraction yielded any non-blank text
}

// Document is a paginated document ready for structure detection.
type Document struct {
	Title  string // Document title (from metadata or filename)
	Source string // Original filename
	Pages  []Page
}

// PagesWithContent counts pages that carry non-blank text.
func (d *Document) PagesWithContent() int {
	n := 0
	for _, p := range d.Pages {
		if strings.TrimSpace(p.Text) != "" {
			n++
		}
	}
	return n
}

// Methods returns the distinct extraction methods used, in first-seen order.
func (d *Document) Methods() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range d.Pages {
		if p.Method != "" && !seen[p.Method] {
			seen[p.Method] = true
			out = append(out, p.Method)
		}
	}
	return out
}

const separatorWidth = 80

// Separator is the visual page-break line interleaved with page markers.
var Separator = strings.Repeat("=", separatorWidth)

// Render serializes the document into the page-tagged text stream consumed by
// the section engine: each page is introduced by a separator line, a
// "PAGE <n>" marker line, another separator, and a blank line, followed by
// the page body.
func (d *Document) Render() string {
	var b strings.Builder
	for _, page := range d.Pages {
		b.WriteString("\n")
		b.WriteString(Separator)
		b.WriteString("\nPAGE ")
		b.WriteString(strconv.Itoa(page.Number))
		b.WriteString("\n")
		b.WriteString(Separator)
		b.WriteString("\n\n")
		if page.Text != "" {
			b.WriteString(page.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Lines returns the rendered stream split into individual lines.
func (d *Document) Lines() []string {
	return strings.Split(d.Render(), "\n")
}
