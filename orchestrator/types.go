package orchestrator

// Transcript is one scoring request. DurationSeconds is optional; only a
// positive value is used for the speaking rate.
type Transcript struct {
	Text            string
	DurationSeconds *float64
}

// Rubric criteria and their fixed maxima. The maxima sum to 100.
const (
	CriterionContent    = "Content & Structure"
	CriterionSpeechRate = "Speech Rate"
	CriterionLanguage   = "Language & Grammar"
	CriterionClarity    = "Clarity"
	CriterionEngagement = "Engagement"

	MaxContent    = 40
	MaxSpeechRate = 10
	MaxLanguage   = 20
	MaxClarity    = 15
	MaxEngagement = 15
)

type CriterionResult struct {
	Criterion  string         `json:"criterion" yaml:"criterion"`
	Components map[string]any `json:"components" yaml:"components"`
	Score      float64        `json:"score" yaml:"score"`
	MaxScore   float64        `json:"max_score" yaml:"max_score"`
	Feedback   string         `json:"feedback" yaml:"feedback"`
}

type Totals struct {
	Attained float64 `json:"attained" yaml:"attained"`
	Possible float64 `json:"possible" yaml:"possible"`
}

type Report struct {
	OverallScore        float64           `json:"overall_score" yaml:"overall_score"`
	WordCount           int               `json:"word_count" yaml:"word_count"`
	SentenceCount       int               `json:"sentence_count" yaml:"sentence_count"`
	DurationSecondsUsed *float64          `json:"duration_seconds_used" yaml:"duration_seconds_used"`
	PerCriterion        []CriterionResult `json:"per_criterion" yaml:"per_criterion"`
	Totals              Totals            `json:"totals" yaml:"totals"`
}

// Criterion returns the named criterion, or nil.
func (r *Report) Criterion(name string) *CriterionResult {
	for i := range r.PerCriterion {
		if r.PerCriterion[i].Criterion == name {
			return &r.PerCriterion[i]
		}
	}
	return nil
}
