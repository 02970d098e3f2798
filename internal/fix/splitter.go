// Package fix repairs subtitle cues that break style limits: re-wrapping
// text, adjusting timing, and classifying what could not be repaired.
package fix

import (
	"strings"

	"subtidy/internal/profile"
	"subtidy/internal/textwidth"
)

// Preferred break characters. A line may break after any of these; for Latin
// scripts the space is the primary boundary.
const breakAfter = ".,;:!?。，！？、；： "

// Rewrap re-flows cue text (lines joined with a space) into at most MaxLines
// lines within the profile's width limit. Breaks land on the nearest
// preferred boundary at or before the width limit, falling back to the
// boundary nearest the width midpoint. The limit is never raised to force a
// fit: when no legal break exists a segment may still exceed the limit, and
// the caller re-evaluates and reports the residual violation.
func Rewrap(text string, p profile.Profile) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return []string{""}
	}
	if textwidth.Line(text, p.WideCharWidth) <= p.MaxCharsPerLine {
		return []string{text}
	}

	segments := make([]string, 0, p.MaxLines)
	rest := text
	for len(segments) < p.MaxLines-1 && textwidth.Line(rest, p.WideCharWidth) > p.MaxCharsPerLine {
		head, tail := splitOnce(rest, p)
		if tail == "" {
			break
		}
		segments = append(segments, head)
		rest = tail
	}
	// Anything left over stays on the last permitted line.
	return append(segments, rest)
}

// splitOnce cuts one segment off the front of s. The returned tail is empty
// when no legal break point exists.
func splitOnce(s string, p profile.Profile) (head, tail string) {
	runes := []rune(s)
	widths := textwidth.Widths(s, p.WideCharWidth)
	cum := make([]int, len(runes)+1)
	for i, w := range widths {
		cum[i+1] = cum[i] + w
	}
	total := cum[len(runes)]

	// Furthest cut position still within the width limit.
	window := 0
	for i := 1; i < len(runes); i++ {
		if cum[i] <= p.MaxCharsPerLine {
			window = i
		}
	}

	for i := window; i > 0; i-- {
		if widths[i-1] > 0 && preferredBreak(runes[i-1]) {
			return cut(runes, i)
		}
	}

	// No preferred boundary in the window: take the legal break nearest the
	// true width midpoint, even if the first segment ends up over the limit.
	bestPos, bestDist := -1, 0
	for i := 1; i < len(runes); i++ {
		if !legalBreak(runes, widths, i) {
			continue
		}
		dist := cum[i]*2 - total
		if dist < 0 {
			dist = -dist
		}
		if bestPos == -1 || dist < bestDist {
			bestPos, bestDist = i, dist
		}
	}
	if bestPos == -1 {
		return s, ""
	}
	return cut(runes, bestPos)
}

func preferredBreak(r rune) bool {
	return strings.ContainsRune(breakAfter, r)
}

// legalBreak reports whether the text may break before rune position i.
// Spaces and punctuation allow it; wide-script runs (CJK) may break between
// any two wide characters. Markup runes carry no width and never host a
// break, so tags stay whole.
func legalBreak(runes []rune, widths []int, i int) bool {
	if widths[i-1] == 0 {
		return false
	}
	if preferredBreak(runes[i-1]) {
		return true
	}
	return widths[i-1] >= 2 && widths[i] >= 2
}

func cut(runes []rune, i int) (string, string) {
	head := strings.TrimRight(string(runes[:i]), " ")
	tail := strings.TrimLeft(string(runes[i:]), " ")
	return head, tail
}
