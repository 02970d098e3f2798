// Package textwidth measures the visual width of subtitle text.
//
// Width is counted per rune: East Asian wide and fullwidth runes contribute a
// profile-configurable width (normally 2), everything else contributes 1.
// Formatting markup (<i>...</i> tags and {\an8}-style override blocks) is
// invisible to viewers and contributes nothing.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Widths returns the per-rune visual widths of s. Runes that are part of
// markup contribute 0. Control, combining, and otherwise unknown runes
// contribute 1; wide runes contribute wideWidth.
func Widths(s string, wideWidth int) []int {
	if wideWidth < 1 {
		wideWidth = 1
	}
	widths := make([]int, 0, len(s))
	inTag := false
	var closer rune
	for i, r := range s {
		if inTag {
			widths = append(widths, 0)
			if r == closer {
				inTag = false
			}
			continue
		}
		if c := markupCloser(r, s[i+1:]); c != 0 {
			inTag = true
			closer = c
			widths = append(widths, 0)
			continue
		}
		if runewidth.RuneWidth(r) >= 2 {
			widths = append(widths, wideWidth)
		} else {
			widths = append(widths, 1)
		}
	}
	return widths
}

// markupCloser returns the closing rune for a markup opener, or 0 when r is
// not an opener or no closer follows in the rest of the line. A bare "<" or
// "{" in dialogue is ordinary visible text, not the start of a tag.
func markupCloser(r rune, rest string) rune {
	var closer rune
	switch r {
	case '<':
		closer = '>'
	case '{':
		closer = '}'
	default:
		return 0
	}
	if !strings.ContainsRune(rest, closer) {
		return 0
	}
	return closer
}

// Line returns the total visual width of a single line of subtitle text.
func Line(s string, wideWidth int) int {
	total := 0
	for _, w := range Widths(s, wideWidth) {
		total += w
	}
	return total
}

// Lines returns the summed visual width of all lines. Reading-speed (CPS)
// checks use this sum; the line join itself carries no width.
func Lines(lines []string, wideWidth int) int {
	total := 0
	for _, line := range lines {
		total += Line(line, wideWidth)
	}
	return total
}

// StripMarkup removes formatting tags and override blocks from a line.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<{") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	var closer rune
	for i, r := range s {
		if inTag {
			if r == closer {
				inTag = false
			}
			continue
		}
		if c := markupCloser(r, s[i+1:]); c != 0 {
			inTag = true
			closer = c
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
