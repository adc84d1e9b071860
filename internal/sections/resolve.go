package sections

import (
	"fmt"
	"sort"
)

// Resolution is the final output of the engine: the ordered section list,
// the unattributed front-matter span (nil when the first section starts at
// line zero), and the extent of the document. The union of all section
// spans, continuation spans, and the front matter tiles [0, LastLine]
// exactly.
type Resolution struct {
	Sections    []Section
	FrontMatter *Span
	LastLine    int
	LastPage    int
}

// boundary is a cut point in the document: either a section's primary start
// or one of its continuation ranges.
type boundary struct {
	startLine    int
	startPage    int
	section      int // index into sections
	continuation int // index into Continuations, or -1 for the primary span
}

// resolveBoundaries back-fills end lines and pages so that consecutive spans
// are adjacent. Continuation ranges participate as cut points: a section
// interrupted by another section's continuation ends where the continuation
// begins, which keeps the final partition free of overlaps.
func resolveBoundaries(sections []Section, lastLine, lastPage int) Resolution {
	res := Resolution{Sections: sections, LastLine: lastLine, LastPage: lastPage}

	if len(sections) == 0 {
		// No structure detected: the whole document is one unattributed span.
		res.FrontMatter = &Span{StartLine: 0, EndLine: lastLine, StartPage: 1, EndPage: lastPage}
		return res
	}

	var cuts []boundary
	for si := range sections {
		cuts = append(cuts, boundary{
			startLine:    sections[si].StartLine,
			startPage:    sections[si].StartPage,
			section:      si,
			continuation: -1,
		})
		for ci, cont := range sections[si].Continuations {
			cuts = append(cuts, boundary{
				startLine:    cont.StartLine,
				startPage:    cont.StartPage,
				section:      si,
				continuation: ci,
			})
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].startLine < cuts[j].startLine })

	for i, cut := range cuts {
		endLine, endPage := lastLine, lastPage
		if i < len(cuts)-1 {
			endLine = cuts[i+1].startLine - 1
			endPage = cuts[i+1].startPage - 1
		}
		sec := &sections[cut.section]
		if cut.continuation < 0 {
			sec.EndLine = endLine
			sec.EndPage = endPage
		} else {
			sec.Continuations[cut.continuation].EndLine = endLine
			sec.Continuations[cut.continuation].EndPage = endPage
		}
	}

	if first := cuts[0]; first.startLine > 0 {
		res.FrontMatter = &Span{
			StartLine: 0,
			EndLine:   first.startLine - 1,
			StartPage: 1,
			EndPage:   first.startPage - 1,
		}
	}
	return res
}

// Validate checks the structural invariants of a resolution: every span is
// well-formed and the front matter, section spans, and continuation spans
// together tile [0, LastLine] with no gaps and no overlaps. A violation is a
// programming or data error that would corrupt downstream artifacts, so it
// is surfaced as an error rather than silently accepted.
func (r *Resolution) Validate() error {
	var spans []Span
	if r.FrontMatter != nil {
		spans = append(spans, *r.FrontMatter)
	}
	for i := range r.Sections {
		s := &r.Sections[i]
		if s.EndLine < s.StartLine {
			return fmt.Errorf("section %q has end line %d before start line %d",
				s.Target, s.EndLine, s.StartLine)
		}
		if i > 0 && s.StartLine <= r.Sections[i-1].StartLine {
			return fmt.Errorf("section %q out of order at line %d", s.Target, s.StartLine)
		}
		spans = append(spans, Span{StartLine: s.StartLine, EndLine: s.EndLine})
		for _, cont := range s.Continuations {
			if cont.EndLine < cont.StartLine {
				return fmt.Errorf("continuation of %q has end line %d before start line %d",
					s.Target, cont.EndLine, cont.StartLine)
			}
			spans = append(spans, cont)
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].StartLine < spans[j].StartLine })
	next := 0
	for _, sp := range spans {
		if sp.StartLine != next {
			return fmt.Errorf("coverage broken at line %d: next span starts at %d", next, sp.StartLine)
		}
		next = sp.EndLine + 1
	}
	if len(spans) > 0 && next != r.LastLine+1 {
		return fmt.Errorf("coverage ends at line %d, document ends at %d", next-1, r.LastLine)
	}
	return nil
}
