package analysis

// Stage is one section of a well-ordered self-introduction.
type Stage string

const (
	StageSalutation Stage = "salutation"
	StageName       Stage = "name"
	StageAge        Stage = "age"
	StageSchool     Stage = "school"
	StageAdditional Stage = "additional"
	StageClosing    Stage = "closing"
)

// StageOrder is the canonical order stages are expected in.
var StageOrder = []Stage{
	StageSalutation, StageName, StageAge, StageSchool, StageAdditional, StageClosing,
}

// stageTriggers are matched as plain substrings of the normalized text.
var stageTriggers = map[Stage][]string{
	StageSalutation: {"hi", "hello", "good morning", "good afternoon", "good evening", "good day", "i am excited"},
	StageName:       {"name", "i am", "i'm", "my name is"},
	StageAge:        {"age", "years old"},
	StageSchool:     {"school", "class", "college"},
	StageAdditional: {
		"hobbies", "interest", "hobby", "fun fact", "strength", "achievement", "ambition", "goal", "dream",
	},
	StageClosing: {"thank you", "thanks for listening", "thank you for listening", "thankyou"},
}

// Flow is the topical-ordering result. Offsets holds the earliest byte
// offset of every stage that occurs in the text.
type Flow struct {
	Offsets   map[Stage]int
	Satisfied bool
	BrokenAt  Stage
	Points    int
	Feedback  string
}

// StageOffsets locates the earliest trigger of every stage present in the
// normalized text.
func StageOffsets(normalized string) map[Stage]int {
	out := make(map[Stage]int, len(StageOrder))
	for _, st := range StageOrder {
		if off := FirstOffset(normalized, stageTriggers[st]...); off >= 0 {
			out[st] = off
		}
	}
	return out
}

// AnalyzeFlow awards 5 points when the stages that are present appear in
// canonical order. Missing stages are not a violation.
func AnalyzeFlow(normalized string) Flow {
	f := Flow{Offsets: StageOffsets(normalized), Satisfied: true}
	prev := -1
	for _, st := range StageOrder {
		off, ok := f.Offsets[st]
		if !ok {
			continue
		}
		if off < prev {
			f.Satisfied = false
			f.BrokenAt = st
			break
		}
		prev = off
	}
	if f.Satisfied {
		f.Points = 5
		f.Feedback = "Flow followed"
	} else {
		f.Feedback = "Flow not followed / out of order"
	}
	return f
}
