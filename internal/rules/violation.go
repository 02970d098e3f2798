// Package rules scores subtitle cues against a language's style limits.
package rules

import (
	"fmt"
	"time"
)

// Kind identifies one class of style-guide violation.
type Kind int

const (
	DurationTooShort Kind = iota
	DurationTooLong
	CpsTooHigh
	LineTooLong
	TooManyLines
	GapTooSmall
	Overlap
)

var kindNames = map[Kind]string{
	DurationTooShort: "duration_too_short",
	DurationTooLong:  "duration_too_long",
	CpsTooHigh:       "cps_too_high",
	LineTooLong:      "line_too_long",
	TooManyLines:     "too_many_lines",
	GapTooSmall:      "gap_too_small",
	Overlap:          "overlap",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Violation is one finding against one cue. Measured and Limit carry the
// observed value and the ceiling/floor it broke, in the unit natural to the
// kind (milliseconds for timing, visual width for text, CPS for density).
type Violation struct {
	Cue      int     `json:"cue"`
	Kind     Kind    `json:"-"`
	KindName string  `json:"kind"`
	Measured float64 `json:"measured"`
	Limit    float64 `json:"limit"`
	Line     int     `json:"line,omitempty"`
}

// Description renders the violation the way reports show it.
func (v Violation) Description() string {
	switch v.Kind {
	case DurationTooShort:
		return fmt.Sprintf("duration %dms < %dms minimum", int64(v.Measured), int64(v.Limit))
	case DurationTooLong:
		return fmt.Sprintf("duration %dms > %dms maximum", int64(v.Measured), int64(v.Limit))
	case CpsTooHigh:
		return fmt.Sprintf("reading speed %.1f CPS > %.1f maximum", v.Measured, v.Limit)
	case LineTooLong:
		return fmt.Sprintf("line %d is %d chars > %d maximum", v.Line, int64(v.Measured), int64(v.Limit))
	case TooManyLines:
		return fmt.Sprintf("has %d lines, maximum is %d", int64(v.Measured), int64(v.Limit))
	case GapTooSmall:
		return fmt.Sprintf("gap to next cue %dms < %dms minimum", int64(v.Measured), int64(v.Limit))
	case Overlap:
		return fmt.Sprintf("overlaps next cue by %dms", int64(v.Measured))
	default:
		return v.Kind.String()
	}
}

func newViolation(cueIndex int, kind Kind, measured, limit float64) Violation {
	return Violation{Cue: cueIndex, Kind: kind, KindName: kind.String(), Measured: measured, Limit: limit}
}

func millis(d time.Duration) float64 {
	return float64(d.Milliseconds())
}
