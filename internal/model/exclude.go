package model

import "strings"

// DefaultExcludes are the directory and file patterns skipped on every run.
var DefaultExcludes = []string{".git", ".venv*", ".venv_test", "__pycache__", "*.egg-info", "build", "dist"}

// ExcludeSet is the immutable set of exclusion patterns assembled once at
// start-up and handed to the file enumerator.
type ExcludeSet struct {
	patterns []string
}

// NewExcludeSet unions DefaultExcludes with user patterns. Each user value may
// hold several patterns separated by "|". Duplicates and blanks are dropped.
func NewExcludeSet(user ...string) ExcludeSet {
	seen := make(map[string]struct{}, len(DefaultExcludes)+len(user))
	patterns := make([]string, 0, len(DefaultExcludes)+len(user))

	add := func(pattern string) {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			return
		}

		if _, ok := seen[pattern]; ok {
			return
		}

		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
	}

	for _, pattern := range DefaultExcludes {
		add(pattern)
	}

	for _, value := range user {
		for _, pattern := range strings.Split(value, "|") {
			add(pattern)
		}
	}

	return ExcludeSet{patterns: patterns}
}

// Patterns returns a copy of the patterns in insertion order.
func (s ExcludeSet) Patterns() []string {
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)

	return out
}
