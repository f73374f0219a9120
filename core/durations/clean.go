// ABOUTME: Script cleaner removing timestamp ranges from prose
// ABOUTME: Rebuilds the text from retained spans while keeping word boundaries readable

package durations

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanScript removes every timestamp range, and the "+" connectors between
// grouped ranges, from text. It never fails: if the text cannot be scanned or
// holds no ranges it is returned unchanged.
//
// At most one plain space is swallowed on each side of a removed group. A
// single space is put back at the join when a space was swallowed on both
// sides, or when none was swallowed and the neighbouring runes would otherwise
// fuse two words.
func CleanScript(text string) string {
	scan, err := Scan(text)
	if err != nil || scan.Empty() {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, group := range groupRanges(text, scan.Ranges) {
		start := group[0].StartPos
		end := group[len(group)-1].EndPos

		// a space already consumed by the previous group is not swallowed twice
		swallowedLeft := start > last && text[start-1] == ' '
		if swallowedLeft {
			start--
		}
		swallowedRight := end < len(text) && text[end] == ' '
		if swallowedRight {
			end++
		}

		b.WriteString(text[last:start])
		if needsSeparator(b.String(), text[end:], swallowedLeft, swallowedRight) {
			b.WriteByte(' ')
		}
		last = end
	}
	b.WriteString(text[last:])

	return dropConnectors(b.String())
}

// needsSeparator decides whether a space goes between the emitted text and
// the remaining input
func needsSeparator(emitted, rest string, swallowedLeft, swallowedRight bool) bool {
	if emitted == "" || rest == "" {
		return false
	}

	before, _ := utf8.DecodeLastRuneInString(emitted)
	after, _ := utf8.DecodeRuneInString(rest)
	if unicode.IsSpace(before) || unicode.IsSpace(after) {
		return false
	}

	if swallowedLeft && swallowedRight {
		return true
	}
	return !swallowedLeft && !swallowedRight && isWordRune(before) && isWordRune(after)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// dropConnectors removes "+" signs stranded next to removed ranges
func dropConnectors(s string) string {
	s = strings.ReplaceAll(s, " + ", " ")
	s = strings.ReplaceAll(s, "+ ", "")
	return strings.ReplaceAll(s, " +", "")
}
