package sections

import (
	"regexp"
	"strconv"
	"strings"
)

// headingPattern pairs a compiled regex with the section kind it detects.
type headingPattern struct {
	re   *regexp.Regexp
	kind Kind
}

// Numbered heading forms, tried in priority order. The first match wins and
// matching stops for that line.
var numberedPatterns = []headingPattern{
	// "CHAPTER 1: Title", "CHAPTER 1", "Chapter 1:"
	{regexp.MustCompile(`(?i)^CHAPTER\s+(\d+)(?::\s*(.*))?$`), KindChapter},
	// "Chapter One: Title"
	{regexp.MustCompile(`(?i)^CHAPTER\s+(ONE|TWO|THREE|FOUR|FIVE|SIX|SEVEN|EIGHT|NINE|TEN|ELEVEN|TWELVE)(?::\s*(.*))?$`), KindChapter},
	// "PART 1: Title", "Part I:"
	{regexp.MustCompile(`(?i)^PART\s+(\d+|[IVX]+)(?::\s*(.*))?$`), KindPart},
	// "SECTION 1: Title"
	{regexp.MustCompile(`(?i)^SECTION\s+(\d+)(?::\s*(.*))?$`), KindSection},
	// "APPENDIX A: Title"
	{regexp.MustCompile(`(?i)^APPENDIX\s+([A-Z]|\d+)(?::\s*(.*))?$`), KindAppendix},
}

// Standalone markers collide with sidebar navigation labels, so they are only
// matched when the engine is configured to allow them.
var standalonePatterns = []headingPattern{
	{regexp.MustCompile(`(?i)^INTRODUCTION\s*$`), KindIntroduction},
	{regexp.MustCompile(`(?i)^GLOSSARY(?:\s+(?:AND|&)\s+INDEX)?\s*$`), KindGlossary},
	{regexp.MustCompile(`(?i)^INDEX\s*$`), KindIndex},
}

// Match is the raw result of a heading pattern hit on a single line.
type Match struct {
	Kind        Kind
	Ordinal     int    // 0 when the marker carried no resolvable number
	InlineTitle string // title text following ":" on the same line, if any
}

// matcher applies the heading patterns to stripped lines.
type matcher struct {
	vocab      Vocabulary
	standalone bool
}

func newMatcher(vocab Vocabulary, standalone bool) *matcher {
	return &matcher{vocab: vocab, standalone: standalone}
}

// match returns at most one heading detection for a stripped line.
func (m *matcher) match(line string) (Match, bool) {
	for _, p := range numberedPatterns {
		groups := p.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		return Match{
			Kind:        p.kind,
			Ordinal:     m.resolveOrdinal(groups[1]),
			InlineTitle: strings.TrimSpace(groups[2]),
		}, true
	}
	if m.standalone {
		for _, p := range standalonePatterns {
			if p.re.MatchString(line) {
				return Match{Kind: p.kind}, true
			}
		}
	}
	return Match{}, false
}

// matchesAnyNumbered reports whether the line looks like a numbered heading.
// Used by the title extractor to stop capture at the next section marker.
func matchesAnyNumbered(line string) bool {
	for _, p := range numberedPatterns {
		if p.re.MatchString(line) {
			return true
		}
	}
	return false
}

// resolveOrdinal converts a heading number token to an integer. Digits parse
// directly; word numbers and roman numerals go through the vocabulary tables;
// a single letter maps to its alphabet position. Anything else resolves to 0.
func (m *matcher) resolveOrdinal(token string) int {
	if token == "" {
		return 0
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n
	}
	if n, ok := m.vocab.WordNumbers[strings.ToLower(token)]; ok {
		return n
	}
	if n, ok := m.vocab.RomanNumerals[strings.ToUpper(token)]; ok {
		return n
	}
	if len(token) == 1 {
		c := token[0]
		switch {
		case c >= 'a' && c <= 'z':
			return int(c-'a') + 1
		case c >= 'A' && c <= 'Z':
			return int(c-'A') + 1
		}
	}
	return 0
}
