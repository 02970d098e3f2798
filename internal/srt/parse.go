package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"subtidy/internal/services"
)

// Parse reads numbered-block SRT text into a Sequence. A leading byte-order
// mark and CRLF line endings are tolerated, as is a missing or garbled index
// line, since indices are recomputed anyway. Blocks missing their timestamp
// line, with end before start, or with no text are a parse error. The
// returned sequence is sorted by start time and renumbered 1..N.
func Parse(raw []byte) (Sequence, error) {
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, services.Wrap(services.ErrParse, "srt", "parse", "empty subtitle file", nil)
	}

	var seq Sequence
	blockNum := 0
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		blockNum++
		cue, err := parseBlock(block)
		if err != nil {
			return nil, services.Wrap(services.ErrParse, "srt", "parse", fmt.Sprintf("block %d", blockNum), err)
		}
		seq = append(seq, cue)
	}

	seq.SortByStart()
	seq.Reindex()
	return seq, nil
}

func parseBlock(block string) (Cue, error) {
	lines := strings.Split(block, "\n")

	// The index line is optional: some tools omit or mangle it, and the
	// parser renumbers everything on output regardless.
	index := 0
	timingAt := 0
	if !strings.Contains(lines[0], "-->") {
		index, _ = strconv.Atoi(strings.TrimSpace(lines[0]))
		timingAt = 1
	}
	if len(lines) < timingAt+2 {
		return Cue{}, fmt.Errorf("incomplete block %q", firstLine(lines))
	}

	start, end, err := parseTimingLine(lines[timingAt])
	if err != nil {
		return Cue{}, err
	}
	if end < start {
		return Cue{}, fmt.Errorf("end %s before start %s", FormatTimestamp(end), FormatTimestamp(start))
	}

	text := make([]string, 0, len(lines)-timingAt-1)
	for _, line := range lines[timingAt+1:] {
		text = append(text, strings.TrimRight(line, " \t"))
	}

	return Cue{Index: index, Start: start, End: end, Lines: text}, nil
}

func parseTimingLine(line string) (start, end time.Duration, err error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("missing timestamp line, got %q", line)
	}
	start, err = ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
