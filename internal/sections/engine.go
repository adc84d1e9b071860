package sections

import "log/slog"

// Config carries the engine's tunable thresholds. The numeric defaults are
// empirically tuned against the scanned-book corpus; treat them as starting
// points, not algorithmic truths.
type Config struct {
	// LookAheadLines bounds the multi-line title search window.
	LookAheadLines int
	// TOCPageThreshold is the number of distinct resolved ordinals on one
	// page at which the whole page is treated as a table of contents.
	TOCPageThreshold int
	// NonContiguousPageGap is the page distance beyond which duplicate
	// detections are treated as legitimately non-contiguous content rather
	// than TOC/sidebar echoes.
	NonContiguousPageGap int
	// MaxTitleWords caps captured titles; longer titles are truncated.
	MaxTitleWords int
	// StandaloneMarkers enables the INTRODUCTION/GLOSSARY/INDEX patterns,
	// which are off by default because they collide with navigation labels.
	StandaloneMarkers bool

	Vocabulary Vocabulary
}

// DefaultConfig returns the corpus-tuned defaults.
func DefaultConfig() Config {
	return Config{
		LookAheadLines:       15,
		TOCPageThreshold:     3,
		NonContiguousPageGap: 30,
		MaxTitleWords:        8,
		StandaloneMarkers:    false,
		Vocabulary:           DefaultVocabulary(),
	}
}

// Engine is the section detection and boundary resolution engine. It is
// single-threaded and synchronous: one forward scan, three sequential
// filter/merge passes, one resolution pass. It performs no I/O.
type Engine struct {
	cfg     Config
	matcher *matcher
	log     *slog.Logger
}

// NewEngine builds an engine. Zero or missing config fields fall back to the
// defaults; a nil logger falls back to slog.Default().
func NewEngine(cfg Config, log *slog.Logger) *Engine {
	def := DefaultConfig()
	if cfg.LookAheadLines <= 0 {
		cfg.LookAheadLines = def.LookAheadLines
	}
	if cfg.TOCPageThreshold <= 0 {
		cfg.TOCPageThreshold = def.TOCPageThreshold
	}
	if cfg.NonContiguousPageGap <= 0 {
		cfg.NonContiguousPageGap = def.NonContiguousPageGap
	}
	if cfg.MaxTitleWords <= 0 {
		cfg.MaxTitleWords = def.MaxTitleWords
	}
	if cfg.Vocabulary.WordNumbers == nil {
		cfg.Vocabulary.WordNumbers = def.Vocabulary.WordNumbers
	}
	if cfg.Vocabulary.RomanNumerals == nil {
		cfg.Vocabulary.RomanNumerals = def.Vocabulary.RomanNumerals
	}
	if cfg.Vocabulary.ReferenceVerbs == nil {
		cfg.Vocabulary.ReferenceVerbs = def.Vocabulary.ReferenceVerbs
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		cfg:     cfg,
		matcher: newMatcher(cfg.Vocabulary, cfg.StandaloneMarkers),
		log:     log,
	}
}

// Detect runs the full pipeline over a page-tagged line stream and returns
// the resolved document partition. Stages run in a fixed order with no
// backtracking: scan, TOC-page filter, reference filter, duplicate merge,
// boundary resolution. The returned error only reports invariant violations;
// a document with no detected headings is a valid outcome with an empty
// section list and a front-matter span covering everything.
func (e *Engine) Detect(lines []string) (Resolution, error) {
	scanned := e.scan(lines)
	e.log.Info("scan complete", "candidates", len(scanned.candidates), "last_page", scanned.lastPage)

	lastLine := len(lines) - 1
	if lastLine < 0 {
		lastLine = 0
	}
	setProvisionalBoundaries(scanned.candidates, lastLine, scanned.lastPage)

	cands := e.filterTOCPages(scanned.candidates)
	cands = e.filterReferences(cands)
	secs := e.mergeDuplicates(cands)

	res := resolveBoundaries(secs, lastLine, scanned.lastPage)
	if err := res.Validate(); err != nil {
		return Resolution{}, err
	}
	e.log.Info("detection complete", "sections", len(res.Sections))
	return res, nil
}

// setProvisionalBoundaries assigns each raw candidate an end boundary from
// its successor so the merger can compare occurrence sizes. These boundaries
// are provisional: filtering removes candidates without reopening them, and
// resolution recomputes the final partition.
func setProvisionalBoundaries(cands []Candidate, lastLine, lastPage int) {
	for i := range cands {
		if i < len(cands)-1 {
			cands[i].endLine = cands[i+1].StartLine - 1
			cands[i].endPage = cands[i+1].StartPage - 1
		} else {
			cands[i].endLine = lastLine
			cands[i].endPage = lastPage
		}
	}
}
