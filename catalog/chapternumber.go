/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

// parseChapterNumber attempts to parse a leading chapter-number prefix off
// an outline title: one or more dot-separated segments, each a run of
// digits, a single letter, or a run of 1-8 roman-numeral glyphs (i, v or x,
// in either case), optionally
// followed by one extra trailing dot, and required to be followed by
// whitespace and further non-whitespace text. On success it returns the
// matched number and the remaining title with the prefix and separating
// whitespace stripped. This mirrors a regex-shaped grammar
// (`^(?!\.)((^|\.)(roman|letter|digits))+\.?(?=[ \t]+\S+)`) that Go's RE2
// engine can't express directly (no lookahead), so it's hand-parsed
// instead -- isolated here, with its own tests, per the "regex is a
// specification artifact" design note.
func parseChapterNumber(title string) (number, rest string, ok bool) {
	pos := 0
	segmentCount := 0

	for {
		_, next, segOK := matchChapterSegment(title, pos)
		if !segOK {
			break
		}
		pos = next
		segmentCount++

		if pos < len(title) && title[pos] == '.' {
			pos++
			continue
		}
		break
	}

	if segmentCount == 0 {
		return "", title, false
	}

	if pos >= len(title) || !isSpaceOrTab(title[pos]) {
		return "", title, false
	}

	j := pos
	for j < len(title) && isSpaceOrTab(title[j]) {
		j++
	}
	if j >= len(title) {
		return "", title, false
	}

	return title[:pos], title[j:], true
}

// ParseStandaloneChapterNumber reports whether text is entirely a
// chapter-number token (surrounding whitespace is not trimmed, so it makes
// the match fail) -- the same segment grammar as parseChapterNumber,
// but consuming the whole string rather than requiring trailing title text.
// Used by the chapter matcher to recognize a number box sitting beside a
// title box when the outline number itself is virtual.
func ParseStandaloneChapterNumber(text string) (number string, ok bool) {
	pos := 0
	segmentCount := 0

	for {
		seg, next, segOK := matchChapterSegment(text, pos)
		if !segOK {
			break
		}
		_ = seg
		pos = next
		segmentCount++

		if pos < len(text) && text[pos] == '.' {
			pos++
			continue
		}
		break
	}

	if segmentCount == 0 {
		return "", false
	}
	if pos != len(text) {
		return "", false
	}
	return text, true
}

func matchChapterSegment(s string, pos int) (seg string, newPos int, ok bool) {
	if pos >= len(s) {
		return "", pos, false
	}
	c := s[pos]
	switch {
	case c >= '0' && c <= '9':
		j := pos
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		return s[pos:j], j, true
	case isRomanChar(c):
		j := pos
		for j < len(s) && j-pos < 8 && isRomanChar(s[j]) {
			j++
		}
		return s[pos:j], j, true
	case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		return s[pos : pos+1], pos + 1, true
	default:
		return "", pos, false
	}
}

func isRomanChar(c byte) bool {
	switch c {
	case 'i', 'I', 'v', 'V', 'x', 'X':
		return true
	}
	return false
}

func isSpaceOrTab(c byte) bool {
	return c == ' ' || c == '\t'
}
