package rules

import (
	"subtidy/internal/profile"
	"subtidy/internal/srt"
	"subtidy/internal/textwidth"
)

// Evaluate scores every cue in the sequence against the profile's limits and
// returns violations keyed by sequence position (0-based). Per-cue checks run
// in reporting priority order: duration, line count, line width, then reading
// speed. Pairwise overlap and gap findings attach to the earlier cue.
func Evaluate(seq srt.Sequence, p profile.Profile, kids bool) map[int][]Violation {
	found := make(map[int][]Violation)
	add := func(pos int, v Violation) {
		found[pos] = append(found[pos], v)
	}

	for pos, cue := range seq {
		duration := cue.Duration()

		if duration < p.MinDuration {
			add(pos, newViolation(cue.Index, DurationTooShort, millis(duration), millis(p.MinDuration)))
		} else if duration > p.MaxDuration {
			add(pos, newViolation(cue.Index, DurationTooLong, millis(duration), millis(p.MaxDuration)))
		}

		if len(cue.Lines) > p.MaxLines {
			add(pos, newViolation(cue.Index, TooManyLines, float64(len(cue.Lines)), float64(p.MaxLines)))
		}
		for i, line := range cue.Lines {
			width := textwidth.Line(line, p.WideCharWidth)
			if width > p.MaxCharsPerLine {
				v := newViolation(cue.Index, LineTooLong, float64(width), float64(p.MaxCharsPerLine))
				v.Line = i + 1
				add(pos, v)
			}
		}

		// A cue with no screen time has no meaningful reading speed; the
		// duration finding above already covers it.
		if duration > 0 {
			cps := float64(textwidth.Lines(cue.Lines, p.WideCharWidth)) / duration.Seconds()
			if limit := p.CPS(kids); cps > limit {
				add(pos, newViolation(cue.Index, CpsTooHigh, cps, limit))
			}
		}
	}

	for pos := 0; pos+1 < len(seq); pos++ {
		earlier, later := seq[pos], seq[pos+1]
		gap := later.Start - earlier.End
		switch {
		case gap < 0:
			add(pos, newViolation(earlier.Index, Overlap, millis(-gap), 0))
		case gap < p.MinGap:
			add(pos, newViolation(earlier.Index, GapTooSmall, millis(gap), millis(p.MinGap)))
		}
	}

	return found
}

// Count returns the total number of violations across all cues.
func Count(found map[int][]Violation) int {
	total := 0
	for _, vs := range found {
		total += len(vs)
	}
	return total
}

// CountByKind tallies violations per kind name.
func CountByKind(found map[int][]Violation) map[string]int {
	counts := make(map[string]int)
	for _, vs := range found {
		for _, v := range vs {
			counts[v.KindName]++
		}
	}
	return counts
}
