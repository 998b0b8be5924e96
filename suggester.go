package ask

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggester returns the ordered candidates for the current input. It is
// called once with "" when a session starts and again after every edit that
// changes the input, so it should be fast and free of side effects.
type Suggester func(input string) []string

// NewPrefixSuggester suggests the candidates that start with the input,
// ignoring case, in their original order.
func NewPrefixSuggester(candidates []string) Suggester {
	list := append([]string(nil), candidates...)
	return func(input string) []string {
		needle := strings.ToLower(input)
		matches := make([]string, 0, len(list))
		for _, c := range list {
			if strings.HasPrefix(strings.ToLower(c), needle) {
				matches = append(matches, c)
			}
		}
		return matches
	}
}

// NewFuzzySuggester ranks candidates by fuzzy match quality.
//
// Matching is done by sahilm/fuzzy, which favors matches at word boundaries
// and consecutive characters. An empty input returns every candidate in
// original order.
//
// Example:
//
//	suggester := ask.NewFuzzySuggester([]string{
//		"git status", "git commit", "docker ps",
//	})
//	suggester("gst") // ["git status"]
func NewFuzzySuggester(candidates []string) Suggester {
	list := append([]string(nil), candidates...)
	return func(input string) []string {
		if input == "" {
			return append([]string(nil), list...)
		}
		matches := fuzzy.Find(input, list)
		results := make([]string, len(matches))
		for i, m := range matches {
			results[i] = m.Str
		}
		return results
	}
}

// NewFileSuggester suggests files and directories for a path being typed.
// Directories get a trailing slash; hidden entries are only suggested once
// the typed name starts with a dot.
func NewFileSuggester() Suggester {
	return completeFilePath
}

// completeFilePath lists the entries of the directory part of path whose
// names start with its base part.
func completeFilePath(path string) []string {
	dir, base := filepath.Split(path)
	listDir := dir
	if listDir == "" {
		listDir = "."
	}

	entries, err := os.ReadDir(listDir)
	if err != nil {
		return nil
	}

	suggestions := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if !strings.HasPrefix(name, base) {
			continue
		}

		full := dir + name
		if entry.IsDir() {
			full += string(filepath.Separator)
		}
		suggestions = append(suggestions, full)
	}
	return suggestions
}

// NewHistorySuggester suggests previous answers that start with the input,
// most recent first and without duplicates.
func NewHistorySuggester(hm *HistoryManager) Suggester {
	return func(input string) []string {
		entries := hm.GetHistory()
		seen := make(map[string]struct{}, len(entries))
		matches := make([]string, 0, len(entries))
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if _, dup := seen[e]; dup || !strings.HasPrefix(e, input) {
				continue
			}
			seen[e] = struct{}{}
			matches = append(matches, e)
		}
		return matches
	}
}
