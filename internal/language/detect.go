package language

import "unicode"

// Detect guesses the language of subtitle text from its dominant script.
// It returns an ISO 639-1 code; Latin-script text falls back to "en" because
// the style limits for Latin-script languages are identical. The sample
// should be the joined text of the cue sequence with markup removed.
func Detect(sample string) string {
	var han, kana, hangul, cyrillic, arabic, devanagari, latin int
	for _, r := range sample {
		switch {
		case unicode.Is(unicode.Han, r):
			han++
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			kana++
		case unicode.Is(unicode.Hangul, r):
			hangul++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Arabic, r):
			arabic++
		case unicode.Is(unicode.Devanagari, r):
			devanagari++
		case unicode.IsLetter(r):
			latin++
		}
	}

	// Kana distinguishes Japanese from Chinese even when Han dominates.
	if kana > 0 && kana*10 >= han {
		return "ja"
	}
	best, code := latin, "en"
	for _, candidate := range []struct {
		count int
		code  string
	}{
		{han, "zh"},
		{hangul, "ko"},
		{cyrillic, "ru"},
		{arabic, "ar"},
		{devanagari, "hi"},
	} {
		if candidate.count > best {
			best, code = candidate.count, candidate.code
		}
	}
	return code
}
