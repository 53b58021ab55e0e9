/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package match binds outline entries to the text boxes that carry their
// chapter titles, arbitrating between a title-only box, a separate
// number-plus-title pair, or no match at all (a ghost chapter).
package match

import "golang.org/x/text/unicode/norm"

// similarityRatio approximates Python's difflib.SequenceMatcher.ratio()
// with 2*lcsLen/(lenA+lenB), the longest-common-subsequence token ratio.
// Both strings are NFC-normalized first so that equivalent glyph
// compositions (e.g. combining diacritics from different PDF producers)
// compare equal.
func similarityRatio(a, b string) float64 {
	a = norm.NFC.String(a)
	b = norm.NFC.String(b)
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	ra, rb := []rune(a), []rune(b)
	lcs := lcsLength(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
