// Package scrub strips recurring extraction noise from page-tagged text
// before structure detection: sidebar navigation labels, watermark stamp
// fragments, and OCR garbage tokens. Noise is detected as runs of
// consecutive matching lines rather than individual lines, so legitimate
// short content (stat blocks, alignment tokens, single-word entries)
// survives.
package scrub

import (
	"log/slog"
	"regexp"
	"strings"
)

// Config selects the noise classes to remove. NavLabels and JunkTokens are
// book specific and usually come from the overrides file.
type Config struct {
	// NavLabels are sidebar navigation labels that repeat on every page.
	NavLabels []string
	// JunkTokens are short OCR artifacts that appear in repeating header
	// blocks.
	JunkTokens []string
	// RunThreshold is the minimum number of consecutive matching lines
	// before a run is treated as noise. Zero means the default of 3.
	RunThreshold int
	// Watermark enables removal of per-page watermark/DRM stamp fragments.
	Watermark bool
}

const defaultRunThreshold = 3

// Trailing fragments of a watermark block: broken-up date lines and the full
// stamp line.
var watermarkTrailing = []*regexp.Regexp{
	regexp.MustCompile(`^>\s+\S+\s+\S+\s+\d{2}\s+\d{4}$`),
	regexp.MustCompile(`^>\s+\S$`),
	regexp.MustCompile(`^\d{1,2}\s+\d{4}$`),
	regexp.MustCompile(`^\S+\.\S+,\s+\S+\s+<\S+@\S+>`),
}

// Scrubber removes configured noise runs from a line stream.
type Scrubber struct {
	labels    map[string]bool
	junk      map[string]bool
	threshold int
	watermark bool
	log       *slog.Logger
}

// New builds a scrubber. A nil logger falls back to slog.Default().
func New(cfg Config, log *slog.Logger) *Scrubber {
	if log == nil {
		log = slog.Default()
	}
	threshold := cfg.RunThreshold
	if threshold <= 0 {
		threshold = defaultRunThreshold
	}
	s := &Scrubber{
		labels:    make(map[string]bool, len(cfg.NavLabels)),
		junk:      make(map[string]bool, len(cfg.JunkTokens)),
		threshold: threshold,
		watermark: cfg.Watermark,
		log:       log,
	}
	for _, l := range cfg.NavLabels {
		s.labels[l] = true
	}
	for _, j := range cfg.JunkTokens {
		s.junk[j] = true
	}
	return s
}

// Enabled reports whether the scrubber has anything to do.
func (s *Scrubber) Enabled() bool {
	return len(s.labels) > 0 || len(s.junk) > 0 || s.watermark
}

// Clean returns the lines with noise runs removed and the number of lines
// dropped. The input slice is not modified.
func (s *Scrubber) Clean(lines []string) ([]string, int) {
	if !s.Enabled() {
		return lines, 0
	}

	drop := make([]bool, len(lines))
	s.markRuns(lines, drop, s.labels)
	s.markRuns(lines, drop, s.junk)
	if s.watermark {
		s.markWatermark(lines, drop)
	}

	removed := 0
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if drop[i] {
			removed++
			continue
		}
		out = append(out, line)
	}
	if removed > 0 {
		s.log.Info("scrubbed noise lines", "removed", removed, "total", len(lines))
	}
	return out, removed
}

// markRuns flags runs of at least threshold consecutive lines whose trimmed
// text is in the given set.
func (s *Scrubber) markRuns(lines []string, drop []bool, set map[string]bool) {
	if len(set) == 0 {
		return
	}
	i := 0
	for i < len(lines) {
		if !set[strings.TrimSpace(lines[i])] {
			i++
			continue
		}
		j := i
		for j < len(lines) && set[strings.TrimSpace(lines[j])] {
			j++
		}
		if j-i >= s.threshold {
			for k := i; k < j; k++ {
				drop[k] = true
			}
		}
		i = j
	}
}

// markWatermark flags lines matching watermark stamp fragments. The
// patterns are specific enough that single matches are dropped outright.
func (s *Scrubber) markWatermark(lines []string, drop []bool) {
	isFragment := func(line string) bool {
		t := strings.TrimSpace(line)
		if t == "" {
			return false
		}
		for _, re := range watermarkTrailing {
			if re.MatchString(t) {
				return true
			}
		}
		return false
	}

	i := 0
	for i < len(lines) {
		if !isFragment(lines[i]) {
			i++
			continue
		}
		j := i
		for j < len(lines) && isFragment(lines[j]) {
			j++
		}
		for k := i; k < j; k++ {
			drop[k] = true
		}
		i = j
	}
}
