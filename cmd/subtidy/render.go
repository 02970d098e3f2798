package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"subtidy/internal/report"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func passMarker() string {
	if stdoutIsTerminal() {
		return "✓"
	}
	return "OK:"
}

// renderReport writes the full human-readable report: header, issue
// breakdown table, and the capped per-cue details.
func renderReport(w io.Writer, s report.Summary) {
	fmt.Fprintf(w, "File: %s\n", s.File)
	audience := ""
	if s.Kids {
		audience = "children's limits"
	}
	fmt.Fprintf(w, "Language: %s (%s)\n", s.LanguageName,
		joinNonEmpty([]string{
			fmt.Sprintf("%d chars/line", s.MaxCharsPerLine),
			fmt.Sprintf("%.0f CPS max", s.MaxCPS),
			audience,
		}, ", "))
	fmt.Fprintf(w, "Total entries: %d\n", s.TotalCues)

	if s.TotalIssues == 0 {
		fmt.Fprintf(w, "%s all entries pass the style limits\n", passMarker())
		return
	}

	fmt.Fprintf(w, "Issues found: %s in %s\n",
		plural(s.TotalIssues, "violation"), plural(s.CuesWithIssues, "entry"))

	fmt.Fprintln(w, renderTable(
		[]string{"Issue", "Count"},
		kindRows(s.CountsByKind),
		1,
	))

	fmt.Fprintf(w, "Details (first %d):\n", len(s.Details))
	for _, detail := range s.Details {
		fmt.Fprintf(w, "  #%d [%s]\n", detail.Index, detail.Range)
		for _, problem := range detail.Problems {
			fmt.Fprintf(w, "    - %s\n", problem)
		}
	}
	if s.TruncatedCues > 0 {
		fmt.Fprintf(w, "  ... and %s\n", plural(s.TruncatedCues, "more entry"))
	}
}

// renderOutcomes writes the fix/clean tally line.
func renderOutcomes(w io.Writer, s report.Summary) {
	parts := []string{
		plural(s.Fixed, "entry") + " fixed",
		plural(s.Unchanged, "entry") + " unchanged",
	}
	if s.Unfixable > 0 {
		parts = append(parts, plural(s.Unfixable, "entry")+" unfixable")
	}
	if s.Dropped > 0 {
		parts = append(parts, plural(s.Dropped, "entry")+" dropped")
	}
	fmt.Fprintln(w, strings.Join(parts, ", "))
}

func kindRows(counts map[string]int) [][]string {
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	rows := make([][]string, 0, len(kinds))
	for _, kind := range kinds {
		rows = append(rows, []string{kind, strconv.Itoa(counts[kind])})
	}
	return rows
}
