// Package report assembles the structured summary the report and validate
// modes render as tables or JSON.
package report

import (
	"subtidy/internal/fix"
	"subtidy/internal/language"
	"subtidy/internal/profile"
	"subtidy/internal/rules"
	"subtidy/internal/srt"
)

// Detailed per-cue issues are capped so huge files stay readable.
const maxDetails = 10

// CueIssues is one cue's findings for detailed output.
type CueIssues struct {
	Index    int      `json:"index"`
	Range    string   `json:"range"`
	Problems []string `json:"problems"`
}

// Summary is the structured result of scoring one subtitle file.
type Summary struct {
	File            string         `json:"file,omitempty"`
	Language        string         `json:"language"`
	LanguageName    string         `json:"language_name"`
	Kids            bool           `json:"kids"`
	MaxCharsPerLine int            `json:"max_chars_per_line"`
	MaxCPS          float64        `json:"max_cps"`
	TotalCues       int            `json:"total_cues"`
	CuesWithIssues  int            `json:"cues_with_issues"`
	TotalIssues     int            `json:"total_issues"`
	CountsByKind    map[string]int `json:"counts_by_kind,omitempty"`
	Details         []CueIssues    `json:"details,omitempty"`
	TruncatedCues   int            `json:"truncated_cues,omitempty"`

	// Fix/clean mode tallies; zero-valued for validate and report.
	Fixed     int `json:"fixed,omitempty"`
	Unchanged int `json:"unchanged,omitempty"`
	Unfixable int `json:"unfixable,omitempty"`
	Dropped   int `json:"dropped,omitempty"`
}

// Build summarizes evaluator findings for a sequence.
func Build(file string, p profile.Profile, kids bool, seq srt.Sequence, found map[int][]rules.Violation) Summary {
	s := Summary{
		File:            file,
		Language:        p.Code,
		LanguageName:    language.DisplayName(p.Code),
		Kids:            kids,
		MaxCharsPerLine: p.MaxCharsPerLine,
		MaxCPS:          p.CPS(kids),
		TotalCues:       len(seq),
		CuesWithIssues:  len(found),
		TotalIssues:     rules.Count(found),
	}
	if s.TotalIssues == 0 {
		return s
	}
	s.CountsByKind = rules.CountByKind(found)

	for pos, cue := range seq {
		violations := found[pos]
		if len(violations) == 0 {
			continue
		}
		if len(s.Details) == maxDetails {
			s.TruncatedCues = s.CuesWithIssues - maxDetails
			break
		}
		detail := CueIssues{Index: cue.Index, Range: cue.Range()}
		for _, v := range violations {
			detail.Problems = append(detail.Problems, v.Description())
		}
		s.Details = append(s.Details, detail)
	}
	return s
}

// AddOutcomes folds fix-engine tallies into the summary.
func (s *Summary) AddOutcomes(outcomes map[int]fix.Outcome, dropped int) {
	counts := fix.CountByStatus(outcomes)
	s.Fixed = counts[fix.Fixed]
	s.Unchanged = counts[fix.Unchanged]
	s.Unfixable = counts[fix.Unfixable]
	s.Dropped = dropped
}
