package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKeywords(t *testing.T) {
	t.Parallel()

	got := NormalizeKeywords([]string{" School/Class ", "", "Hobbies/Interests", "Strengths or achievements", "goal"})
	assert.Equal(t, []string{"school", "hobbies", "strength", "goal"}, got)
	assert.Len(t, RequiredKeywords, 13)
}

func TestDetectKeywords(t *testing.T) {
	t.Parallel()

	text := Normalize("My name is Asha and a fun fact is that I love my family.")
	hits := DetectKeywords(text, Tokenize(text), RequiredKeywords)
	assert.Equal(t, []string{"name", "family", "fun fact"}, hits.Found)
	assert.Equal(t, 12, hits.Score())
	assert.Equal(t, "name, family, fun fact", hits.Summary())

	none := DetectKeywords("", Tokenize(""), RequiredKeywords)
	assert.Equal(t, 0, none.Score())
	assert.Equal(t, "None", none.Summary())

	// substring matching also fires inside longer words
	inside := DetectKeywords("language", Tokenize("language"), []string{"age"})
	assert.Equal(t, []string{"age"}, inside.Found)

	all := Normalize("name age school class family hobbies")
	assert.Equal(t, 20, DetectKeywords(all, Tokenize(all), RequiredKeywords).Score())
}

func TestScoreSalutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		points int
		phrase string
	}{
		{"excited beats hi", "hi, i am excited to introduce myself", 5, "i am excited to introduce"},
		{"contraction", "i'm excited to introduce my friend", 5, "i'm excited to introduce"},
		{"timed greeting", "good evening everyone", 4, "good evening"},
		{"hello comma", "hello, world", 2, "hello"},
		{"hi space", "hi there", 2, "hi"},
		{"bare hi does not count", "hi", 0, ""},
		{"nothing", "my name is ravi", 0, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := ScoreSalutation(tt.text)
			assert.Equal(t, tt.points, s.Points)
			assert.Equal(t, tt.phrase, s.Phrase)
			assert.NotEmpty(t, s.Feedback)
		})
	}
}

const orderedIntro = "Hello everyone. My name is Ravi. I am 12 years old. I study at Green Valley School. " +
	"My hobbies are chess and reading. Thank you."

func TestAnalyzeFlow(t *testing.T) {
	t.Parallel()

	t.Run("ordered stages", func(t *testing.T) {
		t.Parallel()
		f := AnalyzeFlow(Normalize(orderedIntro))
		assert.True(t, f.Satisfied)
		assert.Equal(t, 5, f.Points)
		assert.Len(t, f.Offsets, len(StageOrder))
	})

	t.Run("closing first breaks flow", func(t *testing.T) {
		t.Parallel()
		f := AnalyzeFlow(Normalize("Thank you. " + orderedIntro[:len(orderedIntro)-len(" Thank you.")]))
		assert.False(t, f.Satisfied)
		assert.Equal(t, 0, f.Points)
		assert.Equal(t, StageClosing, f.BrokenAt)
	})

	t.Run("missing stages are skipped", func(t *testing.T) {
		t.Parallel()
		f := AnalyzeFlow("my name is ravi. thank you")
		assert.Equal(t, 5, f.Points)
		assert.NotContains(t, f.Offsets, StageAge)
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 5, AnalyzeFlow("").Points)
	})

	t.Run("bare age number is not an age trigger", func(t *testing.T) {
		t.Parallel()
		f := AnalyzeFlow(Normalize("Hello, my name is Raj. I go to school. I am 9. Thank you."))
		assert.NotContains(t, f.Offsets, StageAge)
		assert.True(t, f.Satisfied)
		assert.Equal(t, 5, f.Points)
		assert.Equal(t, "Flow followed", f.Feedback)
	})
}

func TestSpeechRate(t *testing.T) {
	t.Parallel()

	d := func(v float64) *float64 { return &v }
	assert.InDelta(t, 120.0, WordsPerMinute(60, d(30)), 1e-9)
	assert.InDelta(t, 33.0, WordsPerMinute(33, nil), 1e-9)
	assert.InDelta(t, 33.0, WordsPerMinute(33, d(0)), 1e-9)
	assert.InDelta(t, 33.0, WordsPerMinute(33, d(-4)), 1e-9)

	tests := []struct {
		wpm    float64
		points int
		band   string
	}{
		{200, 2, "Too fast"},
		{161, 2, "Too fast"},
		{160.9, 6, "Fast"},
		{141, 6, "Fast"},
		{140, 10, "Ideal"},
		{111, 10, "Ideal"},
		{110.5, 6, "Slow"},
		{81, 6, "Slow"},
		{80.9, 0, "Too slow"},
		{0, 0, "Too slow"},
	}
	for _, tt := range tests {
		r := ScoreSpeechRate(tt.wpm)
		assert.Equal(t, tt.points, r.Points, "wpm=%v", tt.wpm)
		assert.Equal(t, tt.band, r.Band, "wpm=%v", tt.wpm)
	}
}

type stubChecker struct {
	n   int
	err error
}

func (s stubChecker) Name() string { return "stub" }
func (s stubChecker) CountIssues(context.Context, string) (int, error) {
	return s.n, s.err
}

func TestHeuristicGrammarIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"i went to the the park", 1},
		{"the the the", 1},
		{"the the the the", 2},
		{"the, the", 0},
		{"the theory", 0},
		{"i dont know and he cant swim", 2},
		{"i don't know", 0},
		{"is is dont", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeuristicGrammarIssues(tt.text), tt.text)
	}
}

func TestAnalyzeGrammar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := AnalyzeGrammar(ctx, "", 0, nil)
	assert.Equal(t, 10, g.Points)
	assert.Zero(t, g.Per100)

	g = AnalyzeGrammar(ctx, "one two three four", 4, stubChecker{n: 1})
	assert.False(t, g.Fallback)
	assert.InDelta(t, 25.0, g.Per100, 1e-9)
	assert.Equal(t, 10, g.Points)
	assert.Contains(t, g.Feedback, "stub")

	g = AnalyzeGrammar(ctx, "dont dont", 2, stubChecker{err: errors.New("down")})
	assert.True(t, g.Fallback)
	assert.Equal(t, 3, g.Issues)
	assert.Equal(t, 2, g.Points)
	assert.Contains(t, g.Feedback, "fallback")

	bands := []struct {
		per100 float64
		points int
	}{{0, 10}, {29.9, 10}, {30, 8}, {49, 8}, {50, 6}, {70, 4}, {90, 2}, {150, 2}}
	for _, b := range bands {
		assert.Equal(t, b.points, ScoreGrammar(b.per100), "per100=%v", b.per100)
	}
}

func TestScoreVocabulary(t *testing.T) {
	t.Parallel()

	bands := []struct {
		ttr    float64
		points int
	}{{1, 10}, {0.9, 10}, {0.89, 8}, {0.7, 8}, {0.5, 6}, {0.3, 4}, {0.29, 2}, {0, 2}}
	for _, b := range bands {
		assert.Equal(t, b.points, ScoreVocabulary(b.ttr), "ttr=%v", b.ttr)
	}
}

func TestAnalyzeFillers(t *testing.T) {
	t.Parallel()

	empty := AnalyzeFillers("", Tokenize(""))
	assert.Zero(t, empty.Count)
	assert.Equal(t, 15, empty.Points)

	text := Normalize("Um, I mean, like, you know, it was okay")
	f := AnalyzeFillers(text, Tokenize(text))
	assert.Equal(t, 5, f.Count)
	assert.Equal(t, map[string]int{"um": 1, "i mean": 1, "like": 1, "you know": 1, "okay": 1}, f.Hits)
	assert.InDelta(t, 500.0/9, f.Rate, 1e-9)
	assert.Equal(t, 3, f.Points)

	bands := []struct {
		pct    float64
		points int
	}{{0, 15}, {3, 15}, {3.01, 12}, {6, 12}, {9, 9}, {12, 6}, {12.5, 3}}
	for _, b := range bands {
		assert.Equal(t, b.points, ScoreFillerRate(b.pct), "pct=%v", b.pct)
	}
}

func TestFillerMonotonicity(t *testing.T) {
	t.Parallel()

	base := "my name is ravi and i study in class five at the city school near my home"
	prev := 15
	text := base
	for i := 0; i < 12; i++ {
		n := Normalize(text)
		pts := AnalyzeFillers(n, Tokenize(n)).Points
		assert.LessOrEqual(t, pts, prev, "after %d fillers", i)
		prev = pts
		text += " um"
	}
}

type stubSentiment struct {
	c   float64
	err error
}

func (s stubSentiment) Name() string { return "stub" }
func (s stubSentiment) Compound(context.Context, string) (float64, error) {
	return s.c, s.err
}

func TestAnalyzeSentiment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := AnalyzeSentiment(ctx, "x", nil)
	assert.True(t, s.Fallback)
	assert.Equal(t, 0.5, s.Normalized)
	assert.Equal(t, 9, s.Points)

	s = AnalyzeSentiment(ctx, "x", stubSentiment{c: 0.9})
	assert.False(t, s.Fallback)
	assert.InDelta(t, 0.95, s.Normalized, 1e-9)
	assert.Equal(t, 15, s.Points)

	s = AnalyzeSentiment(ctx, "x", stubSentiment{c: 3})
	assert.Equal(t, 1.0, s.Normalized)

	s = AnalyzeSentiment(ctx, "x", stubSentiment{err: errors.New("boom")})
	assert.True(t, s.Fallback)
	assert.Equal(t, 9, s.Points)

	bands := []struct {
		v      float64
		points int
	}{{1, 15}, {0.9, 15}, {0.7, 12}, {0.5, 9}, {0.3, 6}, {0.1, 3}}
	for _, b := range bands {
		assert.Equal(t, b.points, ScoreSentiment(b.v), "v=%v", b.v)
	}
}

type stubEmbedder struct {
	vecs [][]float64
	err  error
}

func (s stubEmbedder) Name() string { return "stub" }
func (s stubEmbedder) Embed(context.Context, []string) ([][]float64, error) {
	return s.vecs, s.err
}

func TestAnalyzeSemantic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	hits := KeywordHits{Found: []string{"name", "age"}, Required: 4}

	s := AnalyzeSemantic(ctx, "x", hits, nil)
	assert.True(t, s.Fallback)
	assert.InDelta(t, 5.0, s.Bonus, 1e-9)

	assert.Zero(t, AnalyzeSemantic(ctx, "x", KeywordHits{}, nil).Bonus)

	s = AnalyzeSemantic(ctx, "x", hits, stubEmbedder{vecs: [][]float64{{1, 0}, {1, 0}}})
	assert.False(t, s.Fallback)
	assert.InDelta(t, 10.0, s.Bonus, 1e-9)

	s = AnalyzeSemantic(ctx, "x", hits, stubEmbedder{vecs: [][]float64{{1, 0}, {-1, 0}}})
	assert.InDelta(t, 0.0, s.Bonus, 1e-9)

	s = AnalyzeSemantic(ctx, "x", hits, stubEmbedder{vecs: [][]float64{{1, 0}}})
	assert.True(t, s.Fallback)

	s = AnalyzeSemantic(ctx, "x", hits, stubEmbedder{err: errors.New("down")})
	assert.True(t, s.Fallback)
}

func TestCosine(t *testing.T) {
	t.Parallel()

	c, err := Cosine([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c, 1e-9)

	c, err = Cosine([]float64{0, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = Cosine([]float64{1}, []float64{1, 2})
	assert.Error(t, err)
}
