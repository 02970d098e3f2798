package fix

import (
	"strings"
	"testing"

	"subtidy/internal/profile"
	"subtidy/internal/textwidth"
)

func mustProfile(t *testing.T, code string) profile.Profile {
	t.Helper()
	p, err := profile.Lookup(code)
	if err != nil {
		t.Fatalf("lookup %s: %v", code, err)
	}
	return p
}

func TestRewrapShortLineUnchanged(t *testing.T) {
	p := mustProfile(t, "en")
	lines := Rewrap("this fits on one line", p)
	if len(lines) != 1 || lines[0] != "this fits on one line" {
		t.Fatalf("expected single unchanged line, got %v", lines)
	}
}

func TestRewrapFiftyCharsIntoTwoLines(t *testing.T) {
	p := mustProfile(t, "en")
	// 50 visible characters including spaces.
	text := "the quick brown fox jumps over the lazy sleeping d"
	lines := Rewrap(text, p)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if w := textwidth.Line(lines[0], p.WideCharWidth); w > p.MaxCharsPerLine {
		t.Fatalf("first line width %d exceeds %d: %q", w, p.MaxCharsPerLine, lines[0])
	}
	if strings.Contains(lines[0], "  ") || strings.HasSuffix(lines[0], " ") {
		t.Fatalf("expected trimmed line, got %q", lines[0])
	}
	rejoined := lines[0] + " " + lines[1]
	if rejoined != text {
		t.Fatalf("content changed: %q", rejoined)
	}
}

func TestRewrapBreaksAtPunctuation(t *testing.T) {
	p := mustProfile(t, "en")
	text := "first clause ends exactly here, and then the rest follows"
	lines := Rewrap(text, p)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	// Boundary nearest the width limit wins: the space after "then".
	if lines[0] != "first clause ends exactly here, and then" {
		t.Fatalf("unexpected break position: %q", lines[0])
	}
}

func TestRewrapCJKAtPunctuation(t *testing.T) {
	p := mustProfile(t, "zh")
	// Width 24 exceeds the 16 limit; the fullwidth comma sits inside the
	// width window and wins over a midpoint split.
	text := "今天天气很好，我们出去吧"
	lines := Rewrap(text, p)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if lines[0] != "今天天气很好，" || lines[1] != "我们出去吧" {
		t.Fatalf("expected break after fullwidth comma, got %q / %q", lines[0], lines[1])
	}
}

func TestRewrapCJKMidpointFallback(t *testing.T) {
	p := mustProfile(t, "zh")
	text := strings.Repeat("好", 12) // width 24, no punctuation anywhere
	lines := Rewrap(text, p)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	// Without punctuation the break lands at the width midpoint.
	if lines[0] != strings.Repeat("好", 6) || lines[1] != strings.Repeat("好", 6) {
		t.Fatalf("expected an even midpoint split, got %q / %q (widths %d/%d)",
			lines[0], lines[1],
			textwidth.Line(lines[0], p.WideCharWidth), textwidth.Line(lines[1], p.WideCharWidth))
	}
}

func TestRewrapNeverExceedsMaxLines(t *testing.T) {
	p := mustProfile(t, "en")
	text := strings.Repeat("some words that keep going and going ", 5)
	lines := Rewrap(text, p)
	if len(lines) > p.MaxLines {
		t.Fatalf("expected at most %d lines, got %d", p.MaxLines, len(lines))
	}
}

func TestRewrapUnbreakableWordReturnedAnyway(t *testing.T) {
	p := mustProfile(t, "en")
	word := strings.Repeat("a", 60)
	lines := Rewrap(word, p)
	if len(lines) != 1 || lines[0] != word {
		t.Fatalf("expected the unbreakable word back unchanged, got %v", lines)
	}
}

func TestRewrapDoesNotSplitInsideMarkup(t *testing.T) {
	p := mustProfile(t, "en")
	// Visible width 44; the only break character inside the width window is
	// the space inside the tag, which must not host the break.
	text := `aaaa bbbb <font color="red">` + strings.Repeat("c", 34) + `</font>`
	lines := Rewrap(text, p)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if lines[0] != "aaaa bbbb" {
		t.Fatalf("expected break before the tag, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `<font color="red">`) || !strings.HasSuffix(lines[1], "</font>") {
		t.Fatalf("tag split across lines: %q", lines[1])
	}
}

func TestRewrapJoinsExistingLines(t *testing.T) {
	p := mustProfile(t, "en")
	lines := Rewrap("already\nsplit", p)
	if len(lines) != 1 || lines[0] != "already split" {
		t.Fatalf("expected rejoined single line, got %v", lines)
	}
}
