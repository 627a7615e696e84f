package analysis

import (
	"context"
	"fmt"
)

// SentimentScorer is an external sentiment capability returning a compound
// polarity score in [-1, 1].
type SentimentScorer interface {
	Name() string
	Compound(ctx context.Context, text string) (float64, error)
}

// NeutralSentiment is the normalized value used without a scorer.
const NeutralSentiment = 0.5

// Sentiment is the engagement result. Normalized lies in [0, 1].
type Sentiment struct {
	Normalized float64
	Points     int
	Fallback   bool
	Feedback   string
}

// AnalyzeSentiment scores enthusiasm. A nil or failing scorer yields the
// neutral value.
func AnalyzeSentiment(ctx context.Context, text string, scorer SentimentScorer) Sentiment {
	if scorer != nil {
		if c, err := scorer.Compound(ctx, text); err == nil {
			c = clamp(c, -1, 1)
			v := (c + 1) / 2
			return Sentiment{
				Normalized: v,
				Points:     ScoreSentiment(v),
				Feedback:   fmt.Sprintf("%s compound=%g", scorer.Name(), c),
			}
		}
	}
	return Sentiment{
		Normalized: NeutralSentiment,
		Points:     ScoreSentiment(NeutralSentiment),
		Fallback:   true,
		Feedback:   "Sentiment service not available; using neutral fallback",
	}
}

// ScoreSentiment bands a normalized sentiment value.
func ScoreSentiment(v float64) int {
	switch {
	case v >= 0.9:
		return 15
	case v >= 0.7:
		return 12
	case v >= 0.5:
		return 9
	case v >= 0.3:
		return 6
	default:
		return 3
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
