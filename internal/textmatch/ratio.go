// Package textmatch implements the string similarity primitives used for
// topic and course name resolution: a Ratcliff/Obershelp sequence similarity
// ratio and URL slug normalization.
package textmatch

// Ratio returns the Ratcliff/Obershelp similarity of two strings in [0,1]:
// twice the number of matching characters over the total length of both
// strings, where matches are found by recursively locating the longest
// common substring and matching the pieces on either side of it.
//
// Equal strings score 1.0 and strings with no characters in common score
// 0.0. Comparing two empty strings scores 0.0.
func Ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	matched := matchingCharacters(a, b)
	return 2 * float64(matched) / float64(total)
}

// matchingCharacters counts characters covered by the recursive
// longest-common-substring decomposition of a and b.
func matchingCharacters(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	aStart, bStart, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}

	return size +
		matchingCharacters(a[:aStart], b[:bStart]) +
		matchingCharacters(a[aStart+size:], b[bStart+size:])
}

// longestCommonSubstring finds the longest common substring of a and b,
// returning its start offsets and length. Ties keep the first match found,
// so the decomposition is deterministic.
func longestCommonSubstring(a, b string) (aStart, bStart, size int) {
	// lengths[j] is the length of the common suffix ending at a[i-1], b[j-1]
	// for the current row i. A single row is enough since we only ever look
	// one row back.
	lengths := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		// Walk the row right to left so lengths[j-1] still holds the
		// previous row's value when we read it.
		for j := len(b); j >= 1; j-- {
			if a[i-1] != b[j-1] {
				lengths[j] = 0
				continue
			}
			lengths[j] = lengths[j-1] + 1
			if lengths[j] > size {
				size = lengths[j]
				aStart = i - size
				bStart = j - size
			}
		}
	}

	return aStart, bStart, size
}
