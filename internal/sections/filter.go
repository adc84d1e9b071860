package sections

import (
	"sort"
	"strings"
)

// filterTOCPages discards every candidate that starts on a table-of-contents
// page. A page qualifies when the count of distinct resolved ordinals
// detected on it reaches the configured threshold; the whole page is then
// dropped, including candidates without a resolved ordinal, since they
// co-occur with the flagged listing.
func (e *Engine) filterTOCPages(cands []Candidate) []Candidate {
	if len(cands) == 0 {
		return cands
	}

	byPage := make(map[int][]Candidate)
	for _, c := range cands {
		byPage[c.StartPage] = append(byPage[c.StartPage], c)
	}

	tocPages := make(map[int]bool)
	for page, pageCands := range byPage {
		ordinals := make(map[int]bool)
		for _, c := range pageCands {
			if c.Ordinal > 0 {
				ordinals[c.Ordinal] = true
			}
		}
		if len(ordinals) >= e.cfg.TOCPageThreshold {
			tocPages[page] = true
			e.log.Info("table-of-contents page detected",
				"page", page,
				"markers", len(pageCands),
				"distinct_ordinals", len(ordinals),
			)
		}
	}
	if len(tocPages) == 0 {
		return cands
	}

	filtered := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if !tocPages[c.StartPage] {
			filtered = append(filtered, c)
		}
	}
	if removed := len(cands) - len(filtered); removed > 0 {
		e.log.Info("dropped table-of-contents entries",
			"removed", removed, "pages", sortedKeys(tocPages))
	}
	return filtered
}

// filterReferences drops candidates whose captured title reads like a
// narrative cross-reference ("Chapter 4: Skills includes..."), then truncates
// any surviving title that exceeds the configured word cap, regenerating the
// target name from the shorter title.
func (e *Engine) filterReferences(cands []Candidate) []Candidate {
	if len(cands) == 0 {
		return cands
	}

	filtered := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if e.isReferenceTitle(c.Title) {
			e.log.Info("dropped reference-style candidate",
				"kind", c.Kind.String(),
				"ordinal", c.Ordinal,
				"page", c.StartPage,
				"title", clip(c.Title, 50),
			)
			continue
		}

		if len(strings.Fields(c.Title)) > e.cfg.MaxTitleWords {
			truncated := c.withTruncatedTitle(e.cfg.MaxTitleWords)
			e.log.Info("truncated long title",
				"kind", c.Kind.String(),
				"ordinal", c.Ordinal,
				"from", clip(c.Title, 50),
				"to", truncated.Title,
			)
			c = truncated
		}
		filtered = append(filtered, c)
	}

	if removed := len(cands) - len(filtered); removed > 0 {
		e.log.Info("dropped reference-style candidates", "removed", removed)
	}
	return filtered
}

// isReferenceTitle checks the first six title words against the reference
// verb table, ignoring trailing punctuation.
func (e *Engine) isReferenceTitle(title string) bool {
	if title == "" {
		return false
	}
	words := strings.Fields(strings.ToLower(title))
	if len(words) > 6 {
		words = words[:6]
	}
	for _, w := range words {
		if e.cfg.Vocabulary.ReferenceVerbs[strings.TrimRight(w, ".,;:")] {
			return true
		}
	}
	return false
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
