package parser

import (
	"strings"
	"testing"
)

func TestTextParser_FormFeedPages(t *testing.T) {
	input := "Page one content.\nMore of page one.\fPage two content.\fPage three."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Number != 1 || doc.Pages[2].Number != 3 {
		t.Errorf("page numbers = %d, %d; want 1, 3", doc.Pages[0].Number, doc.Pages[2].Number)
	}
	if doc.Pages[0].Text != "Page one content.\nMore of page one." {
		t.Errorf("page 1 text = %q", doc.Pages[0].Text)
	}
	if !doc.Pages[1].HasText {
		t.Error("expected page 2 to have text")
	}
}

func TestTextParser_SyntheticPagination(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("line\n")
	}
	p := &TextParser{Options: Options{LinesPerPage: 4}}
	doc, err := p.Parse(strings.NewReader(sb.String()), "long.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	if got := strings.Count(doc.Pages[0].Text, "line"); got != 4 {
		t.Errorf("page 1 has %d lines, want 4", got)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", doc.Title)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}

func TestTextParser_SingleLine(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("Hello world"), "single.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Text != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", doc.Pages[0].Text)
	}
	if doc.Pages[0].Method != "text" {
		t.Errorf("method = %q, want %q", doc.Pages[0].Method, "text")
	}
}

func TestTextParser_BlankFormFeedPageSkipped(t *testing.T) {
	input := "Content.\f   \n\fMore content."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	// Page numbering preserves the position of the blank page.
	if doc.Pages[1].Number != 3 {
		t.Errorf("second page number = %d, want 3", doc.Pages[1].Number)
	}
}
