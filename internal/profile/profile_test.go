package profile

import (
	"errors"
	"testing"
	"time"

	"subtidy/internal/services"
)

func TestLookupEnglish(t *testing.T) {
	p, err := Lookup("en")
	if err != nil {
		t.Fatalf("lookup en: %v", err)
	}
	if p.MaxCharsPerLine != 42 {
		t.Fatalf("expected 42 chars per line, got %d", p.MaxCharsPerLine)
	}
	if p.CPSAdult != 17 || p.CPSKids != 15 {
		t.Fatalf("expected 17/15 CPS, got %v/%v", p.CPSAdult, p.CPSKids)
	}
	if p.MinDuration != 833*time.Millisecond || p.MaxDuration != 7*time.Second {
		t.Fatalf("unexpected durations: %v %v", p.MinDuration, p.MaxDuration)
	}
	if p.MinGap != 83*time.Millisecond {
		t.Fatalf("unexpected gap: %v", p.MinGap)
	}
	if p.MaxLines != 2 || p.WideCharWidth != 2 {
		t.Fatalf("unexpected lines/wide: %d %d", p.MaxLines, p.WideCharWidth)
	}
	if p.Name != "English" {
		t.Fatalf("expected display name, got %q", p.Name)
	}
}

func TestLookupNormalizesCode(t *testing.T) {
	for _, code := range []string{"zho", "chinese", "zh-Hans", "ZH"} {
		p, err := Lookup(code)
		if err != nil {
			t.Fatalf("lookup %q: %v", code, err)
		}
		if p.Code != "zh" || p.MaxCharsPerLine != 16 {
			t.Fatalf("lookup %q: expected zh profile, got %+v", code, p)
		}
	}
}

func TestLookupUnknownIsConfigurationError(t *testing.T) {
	_, err := Lookup("tlh")
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCPSSelectsAudience(t *testing.T) {
	p, err := Lookup("en")
	if err != nil {
		t.Fatalf("lookup en: %v", err)
	}
	if p.CPS(false) != 17 {
		t.Fatalf("adult CPS: got %v", p.CPS(false))
	}
	if p.CPS(true) != 15 {
		t.Fatalf("kids CPS: got %v", p.CPS(true))
	}
}
