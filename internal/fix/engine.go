package fix

import (
	"strings"

	"subtidy/internal/profile"
	"subtidy/internal/rules"
	"subtidy/internal/srt"
)

// Options selects the audience limits and the unfixable-cue policy.
type Options struct {
	Kids          bool
	DropUnfixable bool
}

// Result holds the repaired sequence and the per-cue outcomes, keyed by the
// cue's position index (1..N) in the normalized input.
type Result struct {
	Sequence srt.Sequence
	Outcomes map[int]Outcome
	Dropped  int
}

// Run repairs a cue sequence against the profile's limits. Text fixes run
// first per cue, then a single sequence-wide timing pass (text fixes never
// move timestamps), then a final evaluation classifies each cue. With
// DropUnfixable set, cues that still violate the limits are removed and the
// survivors are renumbered 1..N.
func Run(seq srt.Sequence, p profile.Profile, opts Options) Result {
	work := seq.Clone()
	work.SortByStart()
	work.Reindex()

	before := rules.Evaluate(work, p, opts.Kids)

	applied := make(map[int][]FixKind)
	for pos := range work {
		if needsRewrap(before[pos]) {
			work[pos].Lines = Rewrap(strings.Join(work[pos].Lines, " "), p)
			applied[pos] = append(applied[pos], FixRewrap)
		}
	}

	adjusted, timingFixes := Normalize(work, p)
	for pos, kinds := range timingFixes {
		applied[pos] = append(applied[pos], kinds...)
	}

	after := rules.Evaluate(adjusted, p, opts.Kids)

	outcomes := make(map[int]Outcome, len(adjusted))
	var out srt.Sequence
	dropped := 0
	for pos, cue := range adjusted {
		oc := Outcome{Applied: applied[pos], Remaining: after[pos]}
		switch {
		case len(before[pos]) == 0 && len(after[pos]) == 0:
			oc.Status = Unchanged
		case len(after[pos]) == 0:
			oc.Status = Fixed
		default:
			oc.Status = Unfixable
		}
		outcomes[cue.Index] = oc

		if opts.DropUnfixable && oc.Status == Unfixable {
			dropped++
			continue
		}
		out = append(out, cue)
	}

	if opts.DropUnfixable {
		out.Reindex()
	}
	return Result{Sequence: out, Outcomes: outcomes, Dropped: dropped}
}

// CountByStatus tallies outcomes for summary output.
func CountByStatus(outcomes map[int]Outcome) map[Status]int {
	counts := make(map[Status]int, 3)
	for _, oc := range outcomes {
		counts[oc.Status]++
	}
	return counts
}

func needsRewrap(violations []rules.Violation) bool {
	for _, v := range violations {
		if v.Kind == rules.LineTooLong || v.Kind == rules.TooManyLines {
			return true
		}
	}
	return false
}
