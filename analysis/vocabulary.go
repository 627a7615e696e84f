package analysis

// ScoreVocabulary bands a type-token ratio.
func ScoreVocabulary(ttr float64) int {
	switch {
	case ttr >= 0.9:
		return 10
	case ttr >= 0.7:
		return 8
	case ttr >= 0.5:
		return 6
	case ttr >= 0.3:
		return 4
	default:
		return 2
	}
}
