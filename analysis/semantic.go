package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ReferenceDescription is what a self-introduction is expected to be about.
const ReferenceDescription = "Introduction/self introduction content expected"

// MaxSemanticBonus caps the similarity bonus.
const MaxSemanticBonus = 10.0

// Embedder is an external sentence-embedding capability. It returns one
// vector per input text, in order.
type Embedder interface {
	Name() string
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

var errBadEmbedding = errors.New("embedding vectors missing or mismatched")

// Semantic is the similarity bonus folded into Content & Structure.
type Semantic struct {
	Bonus      float64
	Similarity float64
	Fallback   bool
	Feedback   string
}

// AnalyzeSemantic compares the transcript with ReferenceDescription. Without
// a working embedder the bonus is proportional to keyword coverage.
func AnalyzeSemantic(ctx context.Context, text string, hits KeywordHits, emb Embedder) Semantic {
	if emb != nil {
		if sim, err := similarity(ctx, emb, text); err == nil {
			bonus := clamp((sim+1)/2, 0, 1) * MaxSemanticBonus
			return Semantic{
				Bonus:      bonus,
				Similarity: sim,
				Feedback:   fmt.Sprintf("Semantic similarity=%.3f", bonus),
			}
		}
	}
	s := Semantic{Fallback: true}
	if hits.Required > 0 {
		s.Bonus = min(MaxSemanticBonus, MaxSemanticBonus*float64(len(hits.Found))/float64(hits.Required))
	}
	s.Feedback = fmt.Sprintf("Semantic model not used; keyword coverage bonus=%.3f (fallback)", s.Bonus)
	return s
}

func similarity(ctx context.Context, emb Embedder, text string) (float64, error) {
	vecs, err := emb.Embed(ctx, []string{text, ReferenceDescription})
	if err != nil {
		return 0, err
	}
	if len(vecs) != 2 {
		return 0, errBadEmbedding
	}
	return Cosine(vecs[0], vecs[1])
}

// Cosine returns the cosine similarity of two equal-length vectors.
func Cosine(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, errBadEmbedding
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return clamp(dot/(math.Sqrt(na)*math.Sqrt(nb)), -1, 1), nil
}
