package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// GrammarChecker is an external grammar-checking capability.
type GrammarChecker interface {
	Name() string
	// CountIssues returns the number of grammar issues found in text,
	// excluding whitespace-only rule violations.
	CountIssues(ctx context.Context, text string) (int, error)
}

// badContractions are contractions written without their apostrophe.
var badContractions = map[string]struct{}{
	"dont": {}, "doesnt": {}, "isnt": {}, "cant": {},
	"wont": {}, "shouldnt": {}, "couldnt": {}, "wouldnt": {},
}

// Grammar is the grammatical-correctness result.
type Grammar struct {
	Issues   int
	Per100   float64
	Points   int
	Fallback bool
	Feedback string
}

// HeuristicGrammarIssues counts immediately repeated words separated only by
// whitespace ("the the"), plus unapostrophized contractions. A repeated pair
// is consumed as a whole, so "the the the" counts once.
func HeuristicGrammarIssues(normalized string) int {
	locs := wordPattern.FindAllStringIndex(normalized, -1)
	issues := 0
	for i := 0; i+1 < len(locs); {
		a, b := locs[i], locs[i+1]
		sep := normalized[a[1]:b[0]]
		if sep != "" && strings.TrimFunc(sep, unicode.IsSpace) == "" &&
			normalized[a[0]:a[1]] == normalized[b[0]:b[1]] {
			issues++
			i += 2
			continue
		}
		i++
	}
	for _, loc := range locs {
		if _, ok := badContractions[normalized[loc[0]:loc[1]]]; ok {
			issues++
		}
	}
	return issues
}

// AnalyzeGrammar rates grammatical correctness. When checker is nil or fails
// the heuristic counter is used instead and the feedback says so.
func AnalyzeGrammar(ctx context.Context, text string, words int, checker GrammarChecker) Grammar {
	if words == 0 {
		return Grammar{Points: ScoreGrammar(0), Fallback: checker == nil, Feedback: "No words"}
	}
	if checker != nil {
		if n, err := checker.CountIssues(ctx, text); err == nil {
			g := Grammar{Issues: n, Per100: per100(n, words)}
			g.Points = ScoreGrammar(g.Per100)
			g.Feedback = fmt.Sprintf("%d grammar issues detected by %s", n, checker.Name())
			return g
		}
	}
	n := HeuristicGrammarIssues(Normalize(text))
	g := Grammar{Issues: n, Per100: per100(n, words), Fallback: true}
	g.Points = ScoreGrammar(g.Per100)
	g.Feedback = fmt.Sprintf("%d heuristic grammar issues (fallback)", n)
	return g
}

func per100(issues, words int) float64 {
	return float64(issues) / float64(words) * 100
}

// ScoreGrammar bands an error rate expressed per 100 words.
func ScoreGrammar(per100 float64) int {
	r := per100 / 100
	switch {
	case r < 0.3:
		return 10
	case r < 0.5:
		return 8
	case r < 0.7:
		return 6
	case r < 0.9:
		return 4
	default:
		return 2
	}
}
