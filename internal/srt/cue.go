// Package srt models SubRip (.srt) subtitle cues and converts them to and
// from the numbered-block text format.
package srt

import (
	"sort"
	"strings"
	"time"
)

// Cue is one subtitle entry. Start and End are offsets from file start with
// millisecond resolution. Lines are the displayed text lines in order.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Lines []string
}

// Duration returns the on-screen time of the cue. It may be zero or negative
// for malformed input; rule evaluation reports that as a duration violation.
func (c Cue) Duration() time.Duration {
	return c.End - c.Start
}

// Text returns the cue's lines joined with newlines.
func (c Cue) Text() string {
	return strings.Join(c.Lines, "\n")
}

// Range formats the cue's time span the way SRT timestamp lines do.
func (c Cue) Range() string {
	return FormatTimestamp(c.Start) + " --> " + FormatTimestamp(c.End)
}

// Sequence is an ordered list of cues, sorted by start time after ingestion.
type Sequence []Cue

// Clone returns a copy whose cue values can be mutated without aliasing the
// receiver. Line slices are copied too since fixes replace them wholesale.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	for i := range out {
		out[i].Lines = append([]string(nil), out[i].Lines...)
	}
	return out
}

// SortByStart stable-sorts the sequence into presentation order.
func (s Sequence) SortByStart() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Start < s[j].Start
	})
}

// Reindex renumbers cues 1..N in document order. Indices are a derived
// property; input numbering is never trusted.
func (s Sequence) Reindex() {
	for i := range s {
		s[i].Index = i + 1
	}
}
