package analysis

// Fillers is the filler vocabulary. Every entry is counted on its own, so an
// occurrence can be counted by more than one entry.
var Fillers = []string{
	"um", "uh", "like", "you know", "so", "actually", "basically", "right", "i mean",
	"well", "kind of", "kinda", "sort of", "okay", "hmm", "erm", "ah", "uhm", "ahh",
}

// Filler is the filler-word usage result. Rate is a percentage of tokens.
type Filler struct {
	Count  int
	Rate   float64
	Hits   map[string]int
	Points int
}

// AnalyzeFillers counts filler words and phrases. Multi-word fillers count
// once per occurrence while the denominator stays the token count.
func AnalyzeFillers(normalized string, ts TokenStream) Filler {
	f := Filler{Hits: map[string]int{}}
	if ts.Count() > 0 {
		for _, w := range Fillers {
			if n := CountPhrase(normalized, w); n > 0 {
				f.Hits[w] = n
				f.Count += n
			}
		}
		f.Rate = float64(f.Count) / float64(ts.Count()) * 100
	}
	f.Points = ScoreFillerRate(f.Rate)
	return f
}

// ScoreFillerRate bands a filler percentage.
func ScoreFillerRate(pct float64) int {
	switch {
	case pct <= 3:
		return 15
	case pct <= 6:
		return 12
	case pct <= 9:
		return 9
	case pct <= 12:
		return 6
	default:
		return 3
	}
}
