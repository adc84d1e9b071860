package pipeline

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Scanner artifacts commonly appended to book filenames.
var bookSuffixes = []string{"_compressed", "_cropped", "-compressed", "-cropped"}

var bookNameClean = regexp.MustCompile(`[^a-z0-9]+`)

// BookName derives a filesystem-safe book name from an input filename.
// Configured prefixes (scanner or source tags) are stripped first, then
// known scanner suffixes, then the rest is lowercased and slugified.
func BookName(filename string, stripPrefixes []string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	for _, p := range stripPrefixes {
		name = strings.TrimPrefix(name, p)
	}
	lower := strings.ToLower(name)
	for _, s := range bookSuffixes {
		lower = strings.TrimSuffix(lower, s)
	}
	slug := bookNameClean.ReplaceAllString(lower, "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "book"
	}
	return slug
}
