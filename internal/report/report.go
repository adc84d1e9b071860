// Package report renders split results for the CLI.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/knowledgehub/chapterize/internal/writer"
)

var (
	// titleStyle for book headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// warnStyle for skipped or partial results
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for the batch summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatBookHeader renders the per-book header line.
func FormatBookHeader(w io.Writer, book, source string) {
	fmt.Fprintf(w, "\n%s %s\n", titleStyle.Render(book), dimStyle.Render("("+source+")"))
}

// FormatManifest renders one line per output file.
func FormatManifest(w io.Writer, m *writer.Manifest) {
	for _, f := range m.Files {
		pages := fmt.Sprintf("pages %d-%d", f.Span.StartPage, f.Span.EndPage)
		extra := ""
		if n := len(f.Continuations); n > 0 {
			extra = warnStyle.Render(fmt.Sprintf("  +%d continuation(s)", n))
		}
		fmt.Fprintf(w, "  %s %s  %s%s\n",
			successStyle.Render("✓"), f.File, dimStyle.Render(pages), extra)
	}
	for _, note := range m.Notes {
		fmt.Fprintf(w, "  %s %s\n", warnStyle.Render("!"), note)
	}
}

// FormatSkipped renders a resume skip line.
func FormatSkipped(w io.Writer, book string) {
	fmt.Fprintf(w, "  %s %s already split, skipping\n", warnStyle.Render("-"), book)
}

// FormatError renders a per-book failure line.
func FormatError(w io.Writer, book string, err error) {
	fmt.Fprintf(w, "  %s %s: %v\n", errorStyle.Render("✗"), book, err)
}

// Summary aggregates a batch run.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
	Sections  int
	Files     int
}

// FormatSummary renders the batch summary box.
func FormatSummary(w io.Writer, s Summary) {
	status := successStyle.Render("OK")
	if s.Failed > 0 {
		status = errorStyle.Render(fmt.Sprintf("%d FAILED", s.Failed))
	}
	line1 := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Processed:"), s.Processed,
		dimStyle.Render("Skipped:"), s.Skipped,
		dimStyle.Render("Failed:"), s.Failed,
	)
	line2 := fmt.Sprintf("%s %d  %s %d  %s",
		dimStyle.Render("Sections:"), s.Sections,
		dimStyle.Render("Files:"), s.Files,
		status,
	)
	content := titleStyle.Render("Batch Complete") + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, boxStyle.Render(content))
}
