package parsing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// FoldAll folds every element of in.
func FoldAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Fold(s)
	}
	return out
}

// EqualFold reports whether a and b are equal under case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Related reports whether either string contains the other.
// Callers fold both sides first.
func Related(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// SplitTrim splits s on sep and trims each part. Empty parts are kept, so
// "Austin, " yields ["Austin", ""].
func SplitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
