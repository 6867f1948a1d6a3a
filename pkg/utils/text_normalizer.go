package utils

import "strings"

// Normalize canonicalizes free text for fuzzy comparison so that
// "T-Shirt", "tshirt" and "tshirttt" all compare equal.
//
// Steps: lowercase, strip everything that is not an ASCII letter or
// digit, then collapse any run of more than two identical characters
// down to exactly two. Pure and idempotent; empty input yields "".
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))

	// last1/last2 track the last two emitted characters so a third
	// consecutive repeat is dropped.
	var last1, last2 rune
	for _, r := range lowered {
		if !isAlphanumeric(r) {
			continue
		}
		if r == last1 && r == last2 {
			continue
		}
		last2 = last1
		last1 = r
		b.WriteRune(r)
	}

	return b.String()
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
