package orchestrator

import (
	"fmt"
	"math"
	"strings"

	"github.com/maastricht-university/speechscore/analysis"
)

// inputs collects every analyzer result for one transcript.
type inputs struct {
	salutation analysis.Salutation
	keywords   analysis.KeywordHits
	flow       analysis.Flow
	rate       analysis.SpeechRate
	grammar    analysis.Grammar
	ttr        float64
	filler     analysis.Filler
	sentiment  analysis.Sentiment
	semantic   analysis.Semantic
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func (p *Pipeline) criteria(in inputs) []CriterionResult {
	kwScore := in.keywords.Score()
	content := float64(in.salutation.Points+kwScore+in.flow.Points) + in.semantic.Bonus
	vocab := analysis.ScoreVocabulary(in.ttr)
	wpm := round(in.rate.WPM, 2)

	return []CriterionResult{
		{
			Criterion: CriterionContent,
			Components: map[string]any{
				"Salutation": in.salutation.Points,
				"Keywords":   kwScore,
				"Flow":       in.flow.Points,
				"Semantic":   round(in.semantic.Bonus, 3),
			},
			Score:    round(content, 3),
			MaxScore: MaxContent,
			Feedback: fmt.Sprintf("%s. Keywords found: %s. %s. %s",
				strings.TrimSuffix(in.salutation.Feedback, "."),
				in.keywords.Summary(),
				in.flow.Feedback,
				in.semantic.Feedback),
		},
		{
			Criterion: CriterionSpeechRate,
			Components: map[string]any{
				"WPM":          wpm,
				"band_message": in.rate.Band,
			},
			Score:    float64(in.rate.Points),
			MaxScore: MaxSpeechRate,
			Feedback: fmt.Sprintf("WPM=%g. %s", wpm, in.rate.Band),
		},
		{
			Criterion: CriterionLanguage,
			Components: map[string]any{
				"Grammar errors per100": round(in.grammar.Per100, 3),
				"Grammar points":        in.grammar.Points,
				"TTR":                   round(in.ttr, 3),
				"TTR points":            vocab,
			},
			Score:    float64(in.grammar.Points + vocab),
			MaxScore: MaxLanguage,
			Feedback: fmt.Sprintf("%s. TTR=%g", in.grammar.Feedback, round(in.ttr, 3)),
		},
		{
			Criterion: CriterionClarity,
			Components: map[string]any{
				"Filler %":     round(in.filler.Rate, 3),
				"Filler count": in.filler.Count,
			},
			Score:    float64(in.filler.Points),
			MaxScore: MaxClarity,
			Feedback: fmt.Sprintf("Filler words=%d, filler_percent=%g%%", in.filler.Count, round(in.filler.Rate, 2)),
		},
		{
			Criterion: CriterionEngagement,
			Components: map[string]any{
				"Sentiment_normalized_0_1": round(in.sentiment.Normalized, 3),
			},
			Score:    float64(in.sentiment.Points),
			MaxScore: MaxEngagement,
			Feedback: in.sentiment.Feedback,
		},
	}
}

// aggregate sums the criteria and derives the 0-100 overall score.
func aggregate(criteria []CriterionResult) (Totals, float64) {
	var t Totals
	for _, c := range criteria {
		t.Attained += c.Score
		t.Possible += c.MaxScore
	}
	t.Attained = round(t.Attained, 3)
	if t.Possible == 0 {
		return t, 0
	}
	return t, round(t.Attained/t.Possible*100, 2)
}
