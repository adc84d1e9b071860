// Package sections reconstructs the logical structure of a page-tagged text
// stream: it detects candidate headings, filters table-of-contents and
// cross-reference noise, merges duplicate detections, and emits an ordered,
// gap-free partition of the document.
package sections

// Kind identifies the type of a detected document section.
type Kind int

const (
	KindChapter Kind = iota
	KindPart
	KindSection
	KindAppendix
	KindIntroduction
	KindGlossary
	KindIndex
)

func (k Kind) String() string {
	switch k {
	case KindChapter:
		return "chapter"
	case KindPart:
		return "part"
	case KindSection:
		return "section"
	case KindAppendix:
		return "appendix"
	case KindIntroduction:
		return "introduction"
	case KindGlossary:
		return "glossary"
	case KindIndex:
		return "index"
	}
	return "unknown"
}
