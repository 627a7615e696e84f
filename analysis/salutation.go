package analysis

import (
	"fmt"
	"strings"
)

// Salutation is the greeting-quality result.
type Salutation struct {
	Points   int
	Phrase   string
	Feedback string
}

var (
	excitedPhrases = []string{"i am excited to introduce", "i'm excited to introduce"}
	timedGreetings = []string{"good morning", "good afternoon", "good evening", "good day"}
	plainGreetings = []string{"hi ", "hello ", "hi,", "hello,"}
)

// ScoreSalutation grades the greeting. Tiers are checked best first and the
// first match wins.
func ScoreSalutation(normalized string) Salutation {
	for _, p := range excitedPhrases {
		if strings.Contains(normalized, p) {
			return Salutation{Points: 5, Phrase: p, Feedback: "Excellent salutation phrase found"}
		}
	}
	for _, g := range timedGreetings {
		if strings.Contains(normalized, g) {
			return Salutation{Points: 4, Phrase: g, Feedback: fmt.Sprintf("Found greeting '%s'", g)}
		}
	}
	for _, g := range plainGreetings {
		if strings.Contains(normalized, g) {
			g = strings.TrimRight(g, " ,")
			return Salutation{Points: 2, Phrase: g, Feedback: fmt.Sprintf("Found greeting '%s'", g)}
		}
	}
	return Salutation{Feedback: "No salutation detected"}
}
