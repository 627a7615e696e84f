// Package analysis implements the rubric analyzers that score a
// self-introduction transcript. Every analyzer is a pure function over the
// normalized text or its TokenStream and returns a typed result; analyzers
// backed by an optional external service accept that service as an
// interface and fall back to a deterministic heuristic when it is nil or
// fails.
package analysis

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	wordPattern     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// Normalize lowercases text with full Unicode case mapping. A Caser is
// stateful, so one is built per call.
func Normalize(text string) string {
	return cases.Lower(language.Und).String(text)
}

// TokenStream is the ordered list of lowercase word tokens of a transcript.
type TokenStream struct {
	tokens []string
	set    map[string]struct{}
}

// Tokenize lowercases text and extracts maximal runs of word characters.
// Punctuation and whitespace only separate tokens.
func Tokenize(text string) TokenStream {
	toks := wordPattern.FindAllString(Normalize(text), -1)
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return TokenStream{tokens: toks, set: set}
}

// Tokens returns a copy of the token sequence.
func (ts TokenStream) Tokens() []string {
	out := make([]string, len(ts.tokens))
	copy(out, ts.tokens)
	return out
}

// Count is the number of tokens.
func (ts TokenStream) Count() int { return len(ts.tokens) }

// Unique is the number of distinct tokens.
func (ts TokenStream) Unique() int { return len(ts.set) }

// Has reports whether word occurs as a whole token.
func (ts TokenStream) Has(word string) bool {
	_, ok := ts.set[word]
	return ok
}

// TTR is the type-token ratio, 0 for an empty stream.
func (ts TokenStream) TTR() float64 {
	if len(ts.tokens) == 0 {
		return 0
	}
	return float64(len(ts.set)) / float64(len(ts.tokens))
}

// Sentences splits text on runs of sentence-ending punctuation and drops
// empty pieces.
func Sentences(text string) []string {
	var out []string
	for _, s := range sentencePattern.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
