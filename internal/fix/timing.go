package fix

import (
	"subtidy/internal/profile"
	"subtidy/internal/srt"
)

// Normalize repairs cue timing in a single left-to-right pass over the
// sequence, returning a new sequence and the repairs applied per cue
// position. Per cue: short durations are extended to the minimum, capped so
// the gap to the following cue's original start stays legal; long durations
// are shrunk to the maximum; then the gap to the previously emitted cue is
// enforced by shrinking that cue's end, never moving it earlier than its own
// start. Overlap removal wins over minimum duration: a residual short cue is
// left for the evaluator to report rather than cascading corrections
// backward. A cue can collect more than one repair, such as a long cue that
// is shrunk and then pulled back further to clear the next cue's start.
func Normalize(seq srt.Sequence, p profile.Profile) (srt.Sequence, map[int][]FixKind) {
	out := make(srt.Sequence, 0, len(seq))
	applied := make(map[int][]FixKind)
	for i, cue := range seq {
		if cue.Duration() < p.MinDuration {
			end := cue.Start + p.MinDuration
			if i+1 < len(seq) {
				if ceiling := seq[i+1].Start - p.MinGap; end > ceiling {
					end = ceiling
				}
			}
			if end > cue.End {
				cue.End = end
				applied[i] = append(applied[i], FixExtend)
			}
		}

		if cue.Duration() > p.MaxDuration {
			cue.End = cue.Start + p.MaxDuration
			applied[i] = append(applied[i], FixShrink)
		}

		if len(out) > 0 {
			prev := &out[len(out)-1]
			if cue.Start-prev.End < p.MinGap {
				end := cue.Start - p.MinGap
				if end < prev.Start {
					end = prev.Start
				}
				if end < prev.End {
					prev.End = end
					applied[i-1] = append(applied[i-1], FixGap)
				}
			}
		}

		out = append(out, cue)
	}
	return out, applied
}
