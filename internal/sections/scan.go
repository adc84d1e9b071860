package sections

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	pageNumberRe = regexp.MustCompile(`^PAGE\s+(\d+)\s*$`)
	pageMarkerRe = regexp.MustCompile(`^(?:PAGE\s+\d+|={10,})$`)
)

// pageNumber extracts the page number from a "PAGE <n>" marker line, or 0.
func pageNumber(line string) int {
	m := pageNumberRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// isPageMarker reports whether the line is a page-number marker or a visual
// separator line.
func isPageMarker(line string) bool {
	return pageMarkerRe.MatchString(strings.TrimSpace(line))
}

// scanResult is the output of the single forward pass over the line stream.
type scanResult struct {
	candidates []Candidate
	lastPage   int // highest page marker seen; 1 if the stream had none
}

// scan walks the lines once, tracking the current page and handing every
// non-blank, non-marker line to the matcher. This is the only place absolute
// line and page bookkeeping happens before merging.
func (e *Engine) scan(lines []string) scanResult {
	res := scanResult{lastPage: 1}
	currentPage := 1

	for lineNum, raw := range lines {
		if n := pageNumber(raw); n > 0 {
			currentPage = n
			res.lastPage = n
			continue
		}

		stripped := strings.TrimSpace(raw)
		if stripped == "" || isPageMarker(stripped) {
			continue
		}

		m, ok := e.matcher.match(stripped)
		if !ok {
			continue
		}

		title := m.InlineTitle
		if title == "" {
			title = extractTitle(lines, lineNum, e.cfg.LookAheadLines)
		}

		cand := Candidate{
			Kind:      m.Kind,
			Ordinal:   m.Ordinal,
			Title:     title,
			StartLine: lineNum,
			StartPage: currentPage,
			Target:    TargetName(m.Kind, m.Ordinal, title),
		}
		res.candidates = append(res.candidates, cand)

		e.log.Info("heading candidate",
			"kind", m.Kind.String(),
			"ordinal", m.Ordinal,
			"title", title,
			"line", lineNum,
			"page", currentPage,
		)
	}

	return res
}
