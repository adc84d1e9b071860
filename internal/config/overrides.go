package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides carries per-book tuning loaded from an optional YAML file:
// sidebar navigation labels to scrub, filename prefixes to strip when
// deriving book names, and vocabulary extensions for heading detection.
type Overrides struct {
	Books         map[string]BookOverride `yaml:"books"`
	StripPrefixes []string                `yaml:"strip_prefixes"`
	Vocabulary    VocabularyOverride      `yaml:"vocabulary"`
}

// BookOverride is the noise profile for one book, keyed by book name.
type BookOverride struct {
	NavLabels  []string `yaml:"nav_labels"`
	JunkTokens []string `yaml:"junk_tokens"`
	Watermark  bool     `yaml:"watermark"`
}

// VocabularyOverride extends the built-in heading vocabulary.
type VocabularyOverride struct {
	WordNumbers    map[string]int `yaml:"word_numbers"`
	ReferenceVerbs []string       `yaml:"reference_verbs"`
}

// LoadOverrides reads the overrides file. An empty path yields empty
// overrides; a missing file is an error since the path was set explicitly.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return &Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return &o, nil
}

// ForBook returns the noise profile for a book, or a zero profile when the
// book has no entry.
func (o *Overrides) ForBook(book string) BookOverride {
	if o == nil || o.Books == nil {
		return BookOverride{}
	}
	return o.Books[book]
}
