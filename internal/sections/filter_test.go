package sections

import (
	"strings"
	"testing"
)

func cand(kind Kind, ordinal int, title string, line, page int) Candidate {
	return Candidate{
		Kind:      kind,
		Ordinal:   ordinal,
		Title:     title,
		StartLine: line,
		StartPage: page,
		Target:    TargetName(kind, ordinal, title),
	}
}

func TestFilterTOCPages_ThresholdIsWholePage(t *testing.T) {
	e := testEngine(t)

	cands := []Candidate{
		cand(KindChapter, 1, "Alpha", 10, 5),
		cand(KindChapter, 2, "Beta", 11, 5),
		cand(KindChapter, 3, "Gamma", 12, 5),
		cand(KindAppendix, 0, "Unnumbered", 13, 5), // no ordinal, same page
		cand(KindChapter, 1, "Alpha", 100, 20),
	}
	got := e.filterTOCPages(cands)
	if len(got) != 1 {
		t.Fatalf("expected only the page-20 candidate to survive, got %d", len(got))
	}
	if got[0].StartPage != 20 {
		t.Errorf("survivor on page %d, want 20", got[0].StartPage)
	}
}

func TestFilterTOCPages_DistinctOrdinalsRequired(t *testing.T) {
	e := testEngine(t)

	// Three detections but only two distinct ordinals: below the threshold.
	cands := []Candidate{
		cand(KindChapter, 1, "Alpha", 10, 5),
		cand(KindChapter, 1, "Alpha", 11, 5),
		cand(KindChapter, 2, "Beta", 12, 5),
	}
	if got := e.filterTOCPages(cands); len(got) != 3 {
		t.Errorf("expected all candidates kept, got %d", len(got))
	}
}

func TestFilterReferences_DropsNarrativeLines(t *testing.T) {
	e := testEngine(t)

	cands := []Candidate{
		cand(KindChapter, 4, "Skills includes several subsystems", 10, 3),
		cand(KindChapter, 5, "This chapter provides everything you need", 20, 4),
		cand(KindChapter, 6, "Real Heading", 30, 5),
		cand(KindChapter, 7, "", 40, 6),
	}
	got := e.filterReferences(cands)
	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(got))
	}
	if got[0].Ordinal != 6 || got[1].Ordinal != 7 {
		t.Errorf("unexpected survivors: %+v", got)
	}
}

func TestFilterReferences_OnlyFirstSixWordsChecked(t *testing.T) {
	e := testEngine(t)

	// The verb appears as the seventh word, so the title is kept.
	title := "The Great Big Book of Everything includes"
	got := e.filterReferences([]Candidate{cand(KindChapter, 1, title, 0, 1)})
	if len(got) != 1 {
		t.Fatalf("verb beyond the sixth word must not trigger the filter")
	}
}

func TestFilterReferences_TrailingPunctuationStripped(t *testing.T) {
	e := testEngine(t)

	got := e.filterReferences([]Candidate{
		cand(KindChapter, 2, "Magic covers: the basics", 0, 1),
	})
	if len(got) != 0 {
		t.Errorf("expected reference drop despite trailing punctuation")
	}
}

func TestTruncation_LongTitleCapped(t *testing.T) {
	e := testEngine(t)

	words := make([]string, 20)
	for i := range words {
		words[i] = "word"
	}
	long := strings.Join(words, " ")

	got := e.filterReferences([]Candidate{cand(KindChapter, 3, long, 0, 1)})
	if len(got) != 1 {
		t.Fatalf("truncation must not drop the candidate")
	}
	if n := len(strings.Fields(got[0].Title)); n != 8 {
		t.Errorf("truncated title has %d words, want 8", n)
	}
	if got[0].Target != TargetName(KindChapter, 3, got[0].Title) {
		t.Errorf("target not regenerated from truncated title")
	}
}

func TestTruncation_Idempotent(t *testing.T) {
	short := cand(KindChapter, 1, "Already Short", 0, 1)
	if got := short.withTruncatedTitle(8); got != short {
		t.Errorf("truncating a short title must be a no-op, got %+v", got)
	}

	long := cand(KindChapter, 1, strings.Repeat("w ", 20), 0, 1)
	once := long.withTruncatedTitle(8)
	twice := once.withTruncatedTitle(8)
	if once != twice {
		t.Errorf("truncation not idempotent: %+v vs %+v", once, twice)
	}
}

func TestTruncation_DoesNotMutateOriginal(t *testing.T) {
	orig := cand(KindChapter, 1, strings.Repeat("w ", 20), 0, 1)
	before := orig
	_ = orig.withTruncatedTitle(8)
	if orig != before {
		t.Errorf("truncation mutated the original candidate")
	}
}

func TestMergeDuplicates_SingleOccurrencePasses(t *testing.T) {
	e := testEngine(t)
	c := cand(KindChapter, 1, "Alpha", 5, 1)
	c.endLine, c.endPage = 50, 9

	secs := e.mergeDuplicates([]Candidate{c})
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Target != c.Target || secs[0].EndLine != 50 {
		t.Errorf("section does not carry candidate state: %+v", secs[0])
	}
}

func TestMergeDuplicates_TieBreaksByEarliestLine(t *testing.T) {
	e := testEngine(t)
	a := cand(KindChapter, 1, "Alpha", 100, 10)
	a.endLine = 120
	b := cand(KindChapter, 1, "Alpha", 200, 12)
	b.endLine = 220 // same 20-line span

	secs := e.mergeDuplicates([]Candidate{a, b})
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].StartLine != 100 {
		t.Errorf("tie should keep the earliest occurrence, got line %d", secs[0].StartLine)
	}
}

func TestEngine_NilLoggerDefaults(t *testing.T) {
	e := NewEngine(Config{}, nil)
	if e.log == nil {
		t.Fatal("engine must fall back to a default logger")
	}
	if e.cfg.LookAheadLines != 15 || e.cfg.TOCPageThreshold != 3 {
		t.Errorf("zero config must fall back to defaults, got %+v", e.cfg)
	}
}
