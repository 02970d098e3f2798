package srt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"subtidy/internal/services"
)

const sample = `1
00:00:01,000 --> 00:00:03,000
Hello there!

2
00:00:04,000 --> 00:00:06,500
Two lines
of text
`

func TestParseBasic(t *testing.T) {
	seq, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(seq) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(seq))
	}
	if seq[0].Start != time.Second || seq[0].End != 3*time.Second {
		t.Fatalf("unexpected timing: %v %v", seq[0].Start, seq[0].End)
	}
	if seq[0].Text() != "Hello there!" {
		t.Fatalf("unexpected text: %q", seq[0].Text())
	}
	if len(seq[1].Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(seq[1].Lines))
	}
}

func TestParseToleratesBOMAndCRLF(t *testing.T) {
	raw := "\uFEFF" + strings.ReplaceAll(sample, "\n", "\r\n")
	seq, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(seq) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(seq))
	}
}

func TestParseAcceptsPeriodMillis(t *testing.T) {
	raw := "1\n00:00:01.000 --> 00:00:02.000\nHi\n"
	seq, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if seq[0].End != 2*time.Second {
		t.Fatalf("unexpected end: %v", seq[0].End)
	}
}

func TestParseSortsByStartAndReindexes(t *testing.T) {
	raw := `7
00:00:10,000 --> 00:00:12,000
Later

3
00:00:01,000 --> 00:00:02,000
Earlier
`
	seq, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if seq[0].Text() != "Earlier" || seq[1].Text() != "Later" {
		t.Fatalf("expected start-time order, got %q then %q", seq[0].Text(), seq[1].Text())
	}
	if seq[0].Index != 1 || seq[1].Index != 2 {
		t.Fatalf("expected contiguous indices, got %d %d", seq[0].Index, seq[1].Index)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty file", ""},
		{"missing timestamp line", "1\nno arrow here\ntext\n"},
		{"missing text", "1\n00:00:01,000 --> 00:00:02,000\n"},
		{"garbled timestamp", "1\n00:00:xx,000 --> 00:00:02,000\ntext\n"},
		{"end before start", "1\n00:00:05,000 --> 00:00:02,000\ntext\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !errors.Is(err, services.ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParseToleratesIndexProblems(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing index line", "00:00:01,000 --> 00:00:02,000\ntext\n"},
		{"garbled index", "one\n00:00:01,000 --> 00:00:02,000\ntext\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := Parse([]byte(tc.raw))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(seq) != 1 || seq[0].Index != 1 {
				t.Fatalf("expected one renumbered cue, got %+v", seq)
			}
			if seq[0].Text() != "text" {
				t.Fatalf("unexpected text %q", seq[0].Text())
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	seq, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := string(Format(seq))
	if out != sample {
		t.Fatalf("round trip mismatch:\n%q\nwant:\n%q", out, sample)
	}
}

func TestTimestampFormat(t *testing.T) {
	d := time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond
	if got := FormatTimestamp(d); got != "01:02:03,045" {
		t.Fatalf("got %q", got)
	}
	back, err := ParseTimestamp("01:02:03,045")
	if err != nil || back != d {
		t.Fatalf("parse back: %v %v", back, err)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	seq, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	dup := seq.Clone()
	dup[0].Lines[0] = "changed"
	dup[0].End = 99 * time.Second
	if seq[0].Lines[0] == "changed" {
		t.Fatal("clone aliases line storage")
	}
	if seq[0].End == 99*time.Second {
		t.Fatal("clone aliases cue values")
	}
}
