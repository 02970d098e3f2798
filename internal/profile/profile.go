// Package profile holds the per-language timed-text style limits.
//
// Limits follow the Netflix Timed Text Style Guide: characters per line,
// reading speed for adult and children's content, cue duration bounds, and
// the minimum gap between consecutive cues (two frames at 24fps). Profiles
// are immutable values; the built-in table is never mutated after init.
package profile

import (
	"fmt"
	"time"

	"subtidy/internal/language"
	"subtidy/internal/services"
)

const (
	defaultMinDuration   = 833 * time.Millisecond
	defaultMaxDuration   = 7 * time.Second
	defaultMinGap        = 83 * time.Millisecond
	defaultMaxLines      = 2
	defaultWideCharWidth = 2

	latinMaxCharsPerLine = 42
	latinCPSAdult        = 17
	latinCPSKids         = 13
)

// Profile is the immutable limit set for one language.
type Profile struct {
	Code            string
	Name            string
	MaxCharsPerLine int
	MaxLines        int
	CPSAdult        float64
	CPSKids         float64
	MinDuration     time.Duration
	MaxDuration     time.Duration
	MinGap          time.Duration
	WideCharWidth   int
}

// CPS returns the reading-speed ceiling for the selected audience.
func (p Profile) CPS(kids bool) float64 {
	if kids {
		return p.CPSKids
	}
	return p.CPSAdult
}

var profiles = []Profile{
	{Code: "en", MaxCharsPerLine: 42, CPSAdult: 17, CPSKids: 15},
	{Code: "zh", MaxCharsPerLine: 16, CPSAdult: 9, CPSKids: 7},
	{Code: "ja", MaxCharsPerLine: 16, CPSAdult: 9, CPSKids: 7},
	{Code: "ko", MaxCharsPerLine: 16, CPSAdult: 12, CPSKids: 9},
	{Code: "ru", MaxCharsPerLine: 39, CPSAdult: 17, CPSKids: 15},
	{Code: "ar", MaxCharsPerLine: 42, CPSAdult: 17, CPSKids: 15},
	{Code: "hi", MaxCharsPerLine: 42, CPSAdult: 17, CPSKids: 15},
	{Code: "es", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "fr", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "de", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "it", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "pt", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "nl", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "pl", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "sv", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "da", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "no", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
	{Code: "fi", MaxCharsPerLine: latinMaxCharsPerLine, CPSAdult: latinCPSAdult, CPSKids: latinCPSKids},
}

var byCode map[string]Profile

func init() {
	byCode = make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		p.Name = language.DisplayName(p.Code)
		p.MaxLines = defaultMaxLines
		p.MinDuration = defaultMinDuration
		p.MaxDuration = defaultMaxDuration
		p.MinGap = defaultMinGap
		p.WideCharWidth = defaultWideCharWidth
		byCode[p.Code] = p
	}
}

// Lookup resolves a language identifier (code, word form, or BCP 47 tag) to
// its limit profile. Unknown languages are a configuration error; processing
// must not proceed with limits that were never defined.
func Lookup(code string) (Profile, error) {
	normalized := language.ToISO2(code)
	if normalized == "" {
		return Profile{}, services.Wrap(services.ErrConfiguration, "profile", "lookup", fmt.Sprintf("unrecognized language %q", code), nil)
	}
	p, ok := byCode[normalized]
	if !ok {
		return Profile{}, services.Wrap(services.ErrConfiguration, "profile", "lookup", fmt.Sprintf("no style limits defined for language %q", normalized), nil)
	}
	return p, nil
}

// Codes returns the language codes with built-in profiles, for help output.
func Codes() []string {
	codes := make([]string, 0, len(profiles))
	for _, p := range profiles {
		codes = append(codes, p.Code)
	}
	return codes
}
