package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"subtidy/internal/srt"
)

// readInput reads a subtitle file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes serialized subtitles to a file, or stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// loadSequence parses the input and logs what was read.
func loadSequence(ctx *commandContext, path string) (srt.Sequence, error) {
	raw, err := readInput(path)
	if err != nil {
		return nil, err
	}
	seq, err := srt.Parse(raw)
	if err != nil {
		return nil, err
	}
	ctx.ensureLogger().Debug("parsed subtitles", "file", displayName(path), "cues", len(seq))
	return seq, nil
}

// displayName keeps "-" readable in output and logs.
func displayName(path string) string {
	if path == "-" {
		return "(stdin)"
	}
	return path
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	if strings.HasSuffix(word, "y") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(word, "y"))
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
