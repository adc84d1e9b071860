package sections

import (
	"strconv"
	"strings"
)

// Candidate is a line-level heading detection produced by the scanner,
// before filtering and merging. Candidates are value types; the only edit a
// downstream stage performs is title truncation, which returns a new value.
type Candidate struct {
	Kind      Kind
	Ordinal   int // 0 when the heading carried no resolvable number
	Title     string
	StartLine int
	StartPage int
	Target    string // TargetName(Kind, Ordinal, Title)

	// Provisional boundaries, back-filled from the next detection in the raw
	// scan so the merger can compare occurrence sizes. Final boundaries are
	// recomputed after merging.
	endLine int
	endPage int
}

// lineSpan is the size of the provisional line range.
func (c Candidate) lineSpan() int {
	return c.endLine - c.StartLine
}

// section promotes a candidate to a Section carrying its provisional
// boundaries.
func (c Candidate) section() Section {
	return Section{
		Kind:      c.Kind,
		Ordinal:   c.Ordinal,
		Title:     c.Title,
		StartLine: c.StartLine,
		EndLine:   c.endLine,
		StartPage: c.StartPage,
		EndPage:   c.endPage,
		Target:    c.Target,
	}
}

// withTruncatedTitle returns a copy of the candidate with its title capped at
// maxWords words and the target name regenerated to match.
func (c Candidate) withTruncatedTitle(maxWords int) Candidate {
	words := strings.Fields(c.Title)
	if len(words) <= maxWords {
		return c
	}
	c.Title = strings.Join(words[:maxWords], " ")
	c.Target = TargetName(c.Kind, c.Ordinal, c.Title)
	return c
}

// Span is a contiguous line/page range.
type Span struct {
	StartLine int
	EndLine   int
	StartPage int
	EndPage   int
}

// Section is a finalized, bounded unit of document structure. A non-empty
// Continuations list means the section's content legitimately recurs at
// disjoint locations; those ranges belong to this section and are never
// dropped.
type Section struct {
	Kind          Kind
	Ordinal       int
	Title         string
	StartLine     int
	EndLine       int
	StartPage     int
	EndPage       int
	Target        string
	Continuations []Span
}

// LineSpan returns the size of the primary line range.
func (s *Section) LineSpan() int {
	return s.EndLine - s.StartLine
}

func pageRange(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}
