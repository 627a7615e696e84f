package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune matches the character class the tokenizer uses.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

// CountPhrase counts non-overlapping occurrences of phrase in s that start
// and end on a word boundary. Both arguments are expected to be normalized.
func CountPhrase(s, phrase string) int {
	if phrase == "" {
		return 0
	}
	n := 0
	for pos := 0; pos < len(s); {
		i := strings.Index(s[pos:], phrase)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(phrase)
		if boundaryBefore(s, start) && boundaryAfter(s, end) {
			n++
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	return n
}

// FirstOffset returns the byte offset of the earliest occurrence of any of
// the phrases in s, or -1 when none occurs. Matching is plain substring
// matching.
func FirstOffset(s string, phrases ...string) int {
	best := -1
	for _, p := range phrases {
		if i := strings.Index(s, p); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}
