package sections

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	targetSeparators = regexp.MustCompile(`[\s\-&]+`)
	targetInvalid    = regexp.MustCompile(`[^a-z0-9_]`)
	targetCollapse   = regexp.MustCompile(`_+`)
)

const maxTargetTitleLen = 50

// TargetName derives the deterministic identifier for a section from its
// kind, ordinal, and sanitized title. It doubles as the dedup key during
// merging and as the externally visible artifact name (sans extension).
func TargetName(kind Kind, ordinal int, title string) string {
	safeTitle := sanitizeTitle(title)

	var prefix, typePart string
	switch kind {
	case KindChapter:
		if ordinal > 0 {
			prefix = fmt.Sprintf("%02d", ordinal)
		} else {
			prefix = "00"
		}
		typePart = "chapter"
	case KindPart:
		if ordinal > 0 {
			prefix = fmt.Sprintf("part_%02d", ordinal)
		} else {
			prefix = "part"
		}
	case KindAppendix:
		if ordinal > 0 {
			prefix = fmt.Sprintf("appendix_%d", ordinal)
		} else {
			prefix = "appendix"
		}
	case KindSection:
		if ordinal > 0 {
			prefix = fmt.Sprintf("section_%02d", ordinal)
		} else {
			prefix = "section"
		}
	default:
		prefix = kind.String()
	}

	parts := []string{prefix}
	if typePart != "" {
		parts = append(parts, typePart)
		if ordinal > 0 {
			parts = append(parts, fmt.Sprintf("%d", ordinal))
		}
	}
	if safeTitle != "" {
		parts = append(parts, safeTitle)
	}
	return strings.Join(parts, "_")
}

// sanitizeTitle converts free text into a lowercase identifier component:
// separators become underscores, anything outside [a-z0-9_] is removed, runs
// of underscores collapse, and the result is trimmed and length-capped.
func sanitizeTitle(title string) string {
	if title == "" {
		return ""
	}
	name := strings.ToLower(title)
	name = targetSeparators.ReplaceAllString(name, "_")
	name = targetInvalid.ReplaceAllString(name, "")
	name = targetCollapse.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if len(name) > maxTargetTitleLen {
		name = name[:maxTargetTitleLen]
	}
	return name
}
