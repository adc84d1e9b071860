package sections

import (
	"strings"
	"testing"
)

func TestTargetName_Kinds(t *testing.T) {
	tests := []struct {
		kind    Kind
		ordinal int
		title   string
		want    string
	}{
		{KindChapter, 1, "Introduction", "01_chapter_1_introduction"},
		{KindChapter, 12, "Ancestries & Backgrounds", "12_chapter_12_ancestries_backgrounds"},
		{KindChapter, 0, "Untitled", "00_chapter_untitled"},
		{KindPart, 2, "Advanced Rules", "part_02_advanced_rules"},
		{KindPart, 0, "", "part"},
		{KindSection, 3, "Combat", "section_03_combat"},
		{KindAppendix, 1, "Conditions", "appendix_1_conditions"},
		{KindAppendix, 0, "", "appendix"},
		{KindIntroduction, 0, "", "introduction"},
		{KindGlossary, 0, "", "glossary"},
		{KindIndex, 0, "", "index"},
	}
	for _, tt := range tests {
		if got := TargetName(tt.kind, tt.ordinal, tt.title); got != tt.want {
			t.Errorf("TargetName(%v, %d, %q) = %q, want %q", tt.kind, tt.ordinal, tt.title, got, tt.want)
		}
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Playing the Game", "playing_the_game"},
		{"Guns & Gears", "guns_gears"},
		{"Age of Lost-Omens", "age_of_lost_omens"},
		{"What?! Really...", "what_really"},
		{"__trimmed__", "trimmed"},
	}
	for _, tt := range tests {
		if got := sanitizeTitle(tt.in); got != tt.want {
			t.Errorf("sanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeTitle_LengthCap(t *testing.T) {
	long := strings.Repeat("abcde", 20)
	got := sanitizeTitle(long)
	if len(got) != 50 {
		t.Errorf("expected 50-char cap, got %d chars", len(got))
	}
}

func TestTargetName_Deterministic(t *testing.T) {
	a := TargetName(KindChapter, 4, "Skills")
	b := TargetName(KindChapter, 4, "Skills")
	if a != b {
		t.Errorf("target names differ: %q vs %q", a, b)
	}
}
