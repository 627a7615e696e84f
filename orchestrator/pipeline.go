package orchestrator

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/maastricht-university/speechscore/analysis"
)

// Services are the optional capabilities injected into the pipeline. A nil
// field selects the heuristic variant of that analyzer.
type Services struct {
	Grammar   analysis.GrammarChecker
	Sentiment analysis.SentimentScorer
	Embedder  analysis.Embedder
}

// Pipeline scores transcripts against the rubric. It holds no per-call
// state and is safe for concurrent use.
type Pipeline struct {
	svc Services
	log logrus.FieldLogger
}

func NewPipeline(svc Services, log logrus.FieldLogger) *Pipeline {
	return &Pipeline{svc: svc, log: log}
}

// Score runs every analyzer over the transcript and aggregates the report.
// It fails only with an *InputError; blank text yields a complete report.
func (p *Pipeline) Score(ctx context.Context, t Transcript) (*Report, error) {
	if !utf8.ValidString(t.Text) {
		return nil, &InputError{Reason: "text is not valid UTF-8"}
	}

	txt := strings.TrimSpace(t.Text)
	norm := analysis.Normalize(txt)
	ts := analysis.Tokenize(txt)
	words := ts.Count()
	duration := usableDuration(t.DurationSeconds)

	var in inputs
	in.salutation = analysis.ScoreSalutation(norm)
	in.keywords = analysis.DetectKeywords(norm, ts, analysis.RequiredKeywords)
	in.flow = analysis.AnalyzeFlow(norm)
	in.rate = analysis.ScoreSpeechRate(analysis.WordsPerMinute(words, duration))
	in.ttr = ts.TTR()
	in.filler = analysis.AnalyzeFillers(norm, ts)

	// service-backed analyzers may block but always fall back instead of failing
	var g errgroup.Group
	g.Go(func() error {
		in.grammar = analysis.AnalyzeGrammar(ctx, txt, words, p.svc.Grammar)
		return nil
	})
	g.Go(func() error {
		in.sentiment = analysis.AnalyzeSentiment(ctx, txt, p.svc.Sentiment)
		return nil
	})
	g.Go(func() error {
		in.semantic = analysis.AnalyzeSemantic(ctx, txt, in.keywords, p.svc.Embedder)
		return nil
	})
	_ = g.Wait()

	criteria := p.criteria(in)
	totals, overall := aggregate(criteria)

	r := &Report{
		OverallScore:        overall,
		WordCount:           words,
		SentenceCount:       len(analysis.Sentences(txt)),
		DurationSecondsUsed: duration,
		PerCriterion:        criteria,
		Totals:              totals,
	}

	p.log.WithFields(logrus.Fields{
		"words":              r.WordCount,
		"overall":            r.OverallScore,
		"grammar_fallback":   in.grammar.Fallback,
		"sentiment_fallback": in.sentiment.Fallback,
		"semantic_fallback":  in.semantic.Fallback,
	}).Debug("transcript scored")
	return r, nil
}

func usableDuration(d *float64) *float64 {
	if d == nil || *d <= 0 || math.IsNaN(*d) || math.IsInf(*d, 0) {
		return nil
	}
	v := *d
	return &v
}
