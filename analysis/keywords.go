package analysis

import "strings"

// keywordSynonyms folds compound rubric phrasings onto a canonical topic.
// Applied in order.
var keywordSynonyms = []struct{ from, to string }{
	{"school/class", "school"},
	{"class/school", "school"},
	{"hobbies/interests", "hobbies"},
	{"what they do in free time", "hobbies"},
	{"ambition/goal/dream", "ambition"},
	{"strengths or achievements", "strength"},
}

// RequiredKeywords are the topics a complete self-introduction covers.
var RequiredKeywords = NormalizeKeywords([]string{
	"name", "age", "school", "class", "family", "hobbies", "interests",
	"ambition", "goal", "dream", "fun fact", "strength", "achievement",
})

// NormalizeKeywords lowercases and trims raw rubric keywords, drops empty
// entries and folds known synonyms onto their canonical term.
func NormalizeKeywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(Normalize(s))
		if s == "" {
			continue
		}
		for _, syn := range keywordSynonyms {
			if strings.Contains(s, syn.from) {
				s = strings.ReplaceAll(s, syn.from, syn.to)
			}
		}
		out = append(out, s)
	}
	return out
}

// KeywordHits is the outcome of keyword detection.
type KeywordHits struct {
	Found    []string
	Required int
}

// DetectKeywords reports which keywords appear in the transcript, either as
// a whole token or anywhere inside the normalized text. The substring test
// lets multi-word topics such as "fun fact" match; it also lets a keyword
// match inside a longer word.
func DetectKeywords(normalized string, ts TokenStream, keywords []string) KeywordHits {
	hits := KeywordHits{Required: len(keywords)}
	for _, kw := range keywords {
		kw = Normalize(kw)
		if ts.Has(kw) || strings.Contains(normalized, kw) {
			hits.Found = append(hits.Found, kw)
		}
	}
	return hits
}

// Score awards 4 points per keyword, capped at 20.
func (h KeywordHits) Score() int {
	return min(4*len(h.Found), 20)
}

// Summary lists the found keywords, or "None".
func (h KeywordHits) Summary() string {
	if len(h.Found) == 0 {
		return "None"
	}
	return strings.Join(h.Found, ", ")
}
