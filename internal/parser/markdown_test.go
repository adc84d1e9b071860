package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsOnOwnLines(t *testing.T) {
	input := `# CHAPTER 1: The Basics

Intro text.

## Moving Around

Movement content here.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	lines := strings.Split(doc.Pages[0].Text, "\n")
	if lines[0] != "CHAPTER 1: The Basics" {
		t.Errorf("first line = %q, want heading text", lines[0])
	}
	if !strings.Contains(doc.Pages[0].Text, "Intro text.") {
		t.Errorf("expected body text, got %q", doc.Pages[0].Text)
	}
	if !strings.Contains(doc.Pages[0].Text, "Moving Around") {
		t.Errorf("expected subheading text, got %q", doc.Pages[0].Text)
	}
}

func TestMarkdownParser_CodeBlockPreserved(t *testing.T) {
	input := "# API Reference\n\nSome intro.\n\n```\nGET /api/users\nPOST /api/users\n```\n\nMore text after code.\n"

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if !strings.Contains(doc.Pages[0].Text, "GET /api/users") {
		t.Errorf("expected code block content, got %q", doc.Pages[0].Text)
	}
	if !strings.Contains(doc.Pages[0].Text, "More text after code.") {
		t.Errorf("expected post-code text, got %q", doc.Pages[0].Text)
	}
}

func TestMarkdownParser_SyntheticPagination(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteString("# Heading\n\nBody paragraph.\n\n")
	}
	p := &MarkdownParser{Options: Options{LinesPerPage: 5}}
	doc, err := p.Parse(strings.NewReader(sb.String()), "long.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(doc.Pages))
	}
	for i, pg := range doc.Pages {
		if pg.Method != "markdown" {
			t.Errorf("page %d method = %q", i, pg.Method)
		}
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}
