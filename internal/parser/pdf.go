package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/knowledgehub/chapterize/internal/pagedoc"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first,
// then falls back to pdftotext if available.
type PDFParser struct {
	Options Options
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*pagedoc.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "chapterize-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := extractPDFPages(tmpPath)
	if err != nil && p.Options.FallbackPdftotext {
		pages, err = extractPdftotextPages(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return &pagedoc.Document{
		Title:  baseTitle(filename),
		Source: filename,
		Pages:  pages,
	}, nil
}

// extractPDFPages reads the PDF page by page, keeping empty pages so page
// numbers stay aligned with the physical document.
func extractPDFPages(path string) ([]pagedoc.Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []pagedoc.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		pg := pagedoc.Page{Number: i, Method: "pdflib"}
		page := reader.Page(i)
		if !page.V.IsNull() {
			text, err := page.GetPlainText(nil)
			if err == nil {
				text = strings.TrimRight(text, "\n")
				pg.Text = text
				pg.HasText = strings.TrimSpace(text) != ""
			}
		}
		pages = append(pages, pg)
	}
	return pages, nil
}

func extractPdftotextPages(path string) ([]pagedoc.Page, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	// pdftotext separates pages with form feeds.
	var pages []pagedoc.Page
	for i, chunk := range strings.Split(string(out), "\f") {
		chunk = strings.TrimRight(chunk, "\n")
		pages = append(pages, pagedoc.Page{
			Number:  i + 1,
			Text:    chunk,
			Method:  "pdftotext",
			HasText: strings.TrimSpace(chunk) != "",
		})
	}
	return pages, nil
}
