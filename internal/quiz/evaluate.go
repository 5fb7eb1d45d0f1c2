package quiz

import (
	"errors"
	"strings"
)

// ErrNoExpectedAnswers signals a quiz item whose answer field normalizes
// to nothing — a source-data problem, not a wrong submission.
var ErrNoExpectedAnswers = errors.New("expected answer set is empty")

// Evaluate grades submitted against the comma-separated expected set.
// Both sides run through the same normalization, and the submission is
// accepted iff every token it provides is an acceptable answer: a partial
// submission passes as long as everything in it is valid, while a single
// invalid token rejects the whole submission.
//
// Blank submissions must be filtered by the caller; here a submission
// with no usable tokens simply evaluates to false.
func Evaluate(expected, submitted string) (bool, error) {
	want := normalize(expected)
	if len(want) == 0 {
		return false, ErrNoExpectedAnswers
	}

	got := normalize(submitted)
	if len(got) == 0 {
		return false, nil
	}

	accepted := make(map[string]struct{}, len(want))
	for _, tok := range want {
		accepted[tok] = struct{}{}
	}
	for _, tok := range got {
		if _, ok := accepted[tok]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// IsBlank reports whether a submission has no gradeable content — empty,
// whitespace, or commas only. Blank submissions trigger no transition.
func IsBlank(submitted string) bool {
	return len(normalize(submitted)) == 0
}

// normalize splits s on commas and canonicalizes each token: trimmed,
// lowercased, all periods removed (so "U.S." matches "us"). Empty tokens
// are dropped.
func normalize(s string) []string {
	var tokens []string
	for _, part := range strings.Split(s, ",") {
		tok := normalizeToken(part)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func normalizeToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, ".", "")
}
