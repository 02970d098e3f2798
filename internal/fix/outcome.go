package fix

import (
	"fmt"

	"subtidy/internal/rules"
)

// FixKind identifies one repair applied to a cue.
type FixKind int

const (
	FixRewrap FixKind = iota
	FixExtend
	FixShrink
	FixGap
)

var fixNames = map[FixKind]string{
	FixRewrap: "rewrap",
	FixExtend: "extend_duration",
	FixShrink: "shrink_duration",
	FixGap:    "widen_gap",
}

func (k FixKind) String() string {
	if name, ok := fixNames[k]; ok {
		return name
	}
	return fmt.Sprintf("fix(%d)", int(k))
}

// Status is the terminal per-cue classification after the fix pipeline.
type Status int

const (
	// Unchanged cues never had a violation.
	Unchanged Status = iota
	// Fixed cues had violations and now have none.
	Fixed
	// Unfixable cues still carry violations after every applicable repair,
	// typically because the text is too dense for its duration (CPS).
	Unfixable
)

var statusNames = map[Status]string{
	Unchanged: "unchanged",
	Fixed:     "fixed",
	Unfixable: "unfixable",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Outcome records what happened to one cue.
type Outcome struct {
	Status    Status
	Applied   []FixKind
	Remaining []rules.Violation
}
