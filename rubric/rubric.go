// Package rubric generates the human-authored rubric table. The scoring
// pipeline does not read it; weights and bands there are fixed in code and
// this table must be kept in step with them by hand.
package rubric

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header lists the CSV columns in order.
var Header = []string{"criterion", "description", "keywords", "weight", "min_words", "max_words"}

// Row is one rubric criterion. MaxWords of 0 means unbounded.
type Row struct {
	Criterion   string
	Description string
	Keywords    []string
	Weight      int
	MinWords    int
	MaxWords    int
}

// Rows is the rubric as authored.
var Rows = []Row{
	{
		Criterion:   "Salutation Level",
		Description: "Salutation quality (hi/hello/good morning/excited)",
		Keywords:    []string{"hi", "hello", "good morning", "good afternoon", "good evening", "hello everyone", "i am excited"},
		Weight:      5,
	},
	{
		Criterion:   "Keyword Presence",
		Description: "Presence of name, age, class/school, family, hobbies, goals, unique point",
		Keywords:    []string{"name", "age", "school", "class", "family", "hobbies", "goal", "fun fact", "unique"},
		Weight:      30,
	},
	{Criterion: "Flow", Description: "Order: Salutation -> Basic details -> Additional -> Closing", Weight: 5},
	{Criterion: "Speech Rate", Description: "Words per minute evaluation", Weight: 10},
	{Criterion: "Grammar", Description: "Grammar errors count based score", Weight: 10},
	{Criterion: "Vocabulary", Description: "Vocabulary richness (TTR)", Weight: 10},
	{
		Criterion:   "Filler Words",
		Description: "Filler word rate",
		Keywords: []string{
			"um", "uh", "like", "you know", "so", "actually", "basically", "right",
			"i mean", "well", "kinda", "sort of", "okay", "hmm", "ah",
		},
		Weight: 15,
	},
	{Criterion: "Engagement/Sentiment", Description: "Positive/enthusiastic sentiment", Weight: 15},
}

// TotalWeight sums the row weights.
func TotalWeight(rows []Row) int {
	total := 0
	for _, r := range rows {
		total += r.Weight
	}
	return total
}

func (r Row) record() []string {
	maxWords := ""
	if r.MaxWords > 0 {
		maxWords = strconv.Itoa(r.MaxWords)
	}
	return []string{
		r.Criterion,
		r.Description,
		strings.Join(r.Keywords, ";"),
		strconv.Itoa(r.Weight),
		strconv.Itoa(r.MinWords),
		maxWords,
	}
}

// WriteCSV writes the header and rows as CSV.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the rubric CSV to path.
func WriteFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create rubric: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write rubric: %w", err)
	}
	return f.Close()
}
