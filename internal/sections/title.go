package sections

import "strings"

// Bounds for a line to qualify as title text.
const (
	minTitleLineLen = 2
	maxTitleLineLen = 149
)

// extractTitle assembles a multi-line title from the lines following a
// heading marker at start. Blank lines and page markers are skipped until
// title text begins; once it has begun, a blank line, a page marker, or the
// next heading pattern terminates capture. An all-uppercase line longer than
// 10 characters ends the title early unless the next line is a short
// uppercase continuation.
func extractTitle(lines []string, start, lookAhead int) string {
	var parts []string
	started := false

	for offset := 1; offset <= lookAhead; offset++ {
		idx := start + offset
		if idx >= len(lines) {
			break
		}
		line := strings.TrimSpace(lines[idx])

		if line == "" {
			if started {
				break
			}
			continue
		}
		if isPageMarker(line) || strings.HasPrefix(line, "=") {
			if started {
				break
			}
			continue
		}
		if matchesAnyNumbered(line) {
			break
		}

		if len(line) >= minTitleLineLen && len(line) <= maxTitleLineLen {
			parts = append(parts, line)
			started = true

			// A substantial all-caps line is usually the whole title; only
			// continue if the next line looks like a short caps continuation.
			if isUpperLine(line) && len(line) > 10 {
				next := ""
				if idx+1 < len(lines) {
					next = strings.TrimSpace(lines[idx+1])
				}
				if next == "" || !(isUpperLine(next) && len(next) < 100) {
					break
				}
			}
		} else if started {
			break
		}
	}

	return strings.Join(parts, " ")
}

// isUpperLine reports whether the line contains at least one letter and no
// lowercase letters.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	return hasLetter
}
