package wordexp

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrNoExpansion reports input whose expansion produced no words, such
	// as a string that is empty, all whitespace, or a lone unset variable.
	ErrNoExpansion = errors.New("wordexp: expansion produced no words")
)

// Expand applies shell word expansion to s and returns the first resulting
// word. Use ExpandAll when a glob may match more than one path.
func Expand(s string) (string, error) {
	words, err := ExpandAll(s)
	if err != nil {
		return "", err
	}
	return words[0], nil
}

// ExpandAll applies shell word expansion to s and returns every resulting
// word in order. Globbing reads the filesystem; a pattern matching nothing
// stays literal, following shell semantics.
func ExpandAll(s string) ([]string, error) {
	parser := syntax.NewParser()
	var parsed []*syntax.Word
	err := parser.Words(strings.NewReader(s), func(w *syntax.Word) bool {
		parsed = append(parsed, w)
		return true
	})
	if err != nil {
		slog.Warn("wordexp: expansion failed", "input", s, "error", err)
		return nil, fmt.Errorf("wordexp: expand %q: %w", s, err)
	}
	cfg := &expand.Config{
		Env:      expand.FuncEnviron(os.Getenv),
		ReadDir2: os.ReadDir,
	}
	words, err := expand.Fields(cfg, parsed...)
	if err != nil {
		slog.Warn("wordexp: expansion failed", "input", s, "error", err)
		return nil, fmt.Errorf("wordexp: expand %q: %w", s, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoExpansion, s)
	}
	return words, nil
}
