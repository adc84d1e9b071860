package sections

// Vocabulary holds the closed lexical tables the engine matches against.
// It is injected at engine construction so alternate vocabularies (other
// languages' number words, corpus-specific reference verbs) can be supplied
// without touching the engine.
type Vocabulary struct {
	// WordNumbers maps spelled-out chapter numbers to integers.
	WordNumbers map[string]int
	// RomanNumerals maps roman numerals to integers.
	RomanNumerals map[string]int
	// ReferenceVerbs are narrative verbs whose presence in the first words of
	// a captured title marks the line as a cross-reference, not a heading.
	ReferenceVerbs map[string]bool
}

// DefaultVocabulary returns the english tables used for the book corpus.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		WordNumbers: map[string]int{
			"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
			"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
			"eleven": 11, "twelve": 12,
		},
		RomanNumerals: map[string]int{
			"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5,
			"VI": 6, "VII": 7, "VIII": 8, "IX": 9, "X": 10,
		},
		ReferenceVerbs: map[string]bool{
			"includes": true, "provides": true, "contains": true,
			"describes": true, "explains": true, "covers": true,
			"discusses": true, "presents": true, "features": true,
			"offers": true, "summarizes": true, "details": true,
			"outlines": true, "introduces": true, "explores": true,
		},
	}
}

// WithReferenceVerbs returns a copy of the vocabulary with extra reference
// verbs merged in.
func (v Vocabulary) WithReferenceVerbs(verbs []string) Vocabulary {
	if len(verbs) == 0 {
		return v
	}
	merged := make(map[string]bool, len(v.ReferenceVerbs)+len(verbs))
	for w := range v.ReferenceVerbs {
		merged[w] = true
	}
	for _, w := range verbs {
		merged[w] = true
	}
	v.ReferenceVerbs = merged
	return v
}
