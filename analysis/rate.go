package analysis

import "math"

// SpeechRate is the pacing result.
type SpeechRate struct {
	WPM    float64
	Points int
	Band   string
}

// WordsPerMinute derives the speaking rate. Without a positive duration the
// raw word count stands in for the rate.
func WordsPerMinute(words int, durationSeconds *float64) float64 {
	if d := durationSeconds; d != nil && *d > 0 && !math.IsInf(*d, 0) {
		return float64(words) / (*d / 60)
	}
	return float64(words)
}

// ScoreSpeechRate bands a words-per-minute value.
func ScoreSpeechRate(wpm float64) SpeechRate {
	r := SpeechRate{WPM: wpm}
	switch {
	case wpm >= 161:
		r.Points, r.Band = 2, "Too fast"
	case wpm >= 141 && wpm < 161:
		r.Points, r.Band = 6, "Fast"
	case wpm >= 111 && wpm < 141:
		r.Points, r.Band = 10, "Ideal"
	case wpm >= 81 && wpm < 111:
		r.Points, r.Band = 6, "Slow"
	default:
		r.Band = "Too slow"
	}
	return r
}
