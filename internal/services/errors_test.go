package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	err := Wrap(ErrParse, "srt", "parse", "block 3 missing timestamp", nil)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected wrapped error to match ErrParse, got %v", err)
	}
	want := "parse error: srt: parse: block 3 missing timestamp"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapIncludesCause(t *testing.T) {
	cause := errors.New("bad digit")
	err := Wrap(ErrConfiguration, "profile", "lookup", "unknown language", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped error to match cause, got %v", err)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected wrapped error to match ErrConfiguration, got %v", err)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"validation", Wrap(ErrValidation, "rules", "evaluate", "violations found", nil), 1},
		{"parse", Wrap(ErrParse, "srt", "parse", "malformed", nil), 2},
		{"configuration", Wrap(ErrConfiguration, "profile", "lookup", "unknown", nil), 2},
		{"plain", errors.New("boom"), 2},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("%s: expected exit code %d, got %d", tc.name, tc.want, got)
		}
	}
}
