package srt

import (
	"strconv"
	"strings"
)

// Format renders a sequence as numbered-block SRT text. Cues are numbered
// from their Index field; callers renumber via Reindex before output.
func Format(seq Sequence) []byte {
	var b strings.Builder
	for i, cue := range seq {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(cue.Index))
		b.WriteByte('\n')
		b.WriteString(cue.Range())
		b.WriteByte('\n')
		for _, line := range cue.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}
