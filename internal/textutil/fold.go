package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldKey returns the trimmed, case-folded form of value for case-insensitive
// comparisons. It returns "" for blank input.
func FoldKey(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	return cases.Fold().String(trimmed)
}

// EqualFold reports whether a and b are equal after trimming and case folding.
func EqualFold(a, b string) bool {
	return FoldKey(a) == FoldKey(b)
}

// ContainsFold reports whether substr occurs in s, ignoring case.
func ContainsFold(s, substr string) bool {
	key := FoldKey(substr)
	if key == "" {
		return false
	}
	return strings.Contains(FoldKey(s), key)
}

// UniqueFold trims values, drops blanks and removes case-insensitive
// duplicates. The first spelling of each value wins and order is preserved.
// The result is never nil.
func UniqueFold(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := FoldKey(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// FoldSet builds a lookup set of folded keys.
func FoldSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		if key := FoldKey(value); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}
