package utils

// Ratio computes a Ratcliff/Obershelp similarity score between a and b,
// bounded in [0, 1]. It is defined as 2*M/T where T is the combined
// length of both strings and M is the total length of matching,
// non-overlapping blocks found by recursively locating the longest
// common substring and matching the pieces to its left and right.
//
// The recursion makes the score equivalent to difflib's
// SequenceMatcher.ratio() without junk heuristics, which keeps fuzzy
// category inference reproducible. Ratio is symmetric and returns 1.0
// for identical strings (including two empty strings).
func Ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	matched := matchingBlocksLength(a, b)
	return 2.0 * float64(matched) / float64(total)
}

// matchingBlocksLength sums the lengths of all matching blocks between
// a and b via the greedy longest-common-substring recursion.
func matchingBlocksLength(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}

	left := matchingBlocksLength(a[:ai], b[:bi])
	right := matchingBlocksLength(a[ai+size:], b[bi+size:])
	return left + size + right
}

// longestCommonSubstring returns the starting offsets and length of the
// longest common substring of a and b. Ties resolve to the earliest
// occurrence in a, then in b, matching SequenceMatcher.find_longest_match.
func longestCommonSubstring(a, b string) (int, int, int) {
	bestA, bestB, bestSize := 0, 0, 0

	// prev[j+1] holds the length of the common suffix ending at
	// a[i-1] / b[j]; cur is the row being filled.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				cur[j+1] = prev[j] + 1
				if cur[j+1] > bestSize {
					bestSize = cur[j+1]
					bestA = i - bestSize + 1
					bestB = j - bestSize + 1
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
	}

	return bestA, bestB, bestSize
}
