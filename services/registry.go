package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/maastricht-university/speechscore/clients"
	"github.com/maastricht-university/speechscore/config"
	"github.com/maastricht-university/speechscore/orchestrator"
)

// Registry owns the optional service handles for the process. A nil field
// means the capability is not configured.
type Registry struct {
	Grammar   *Grammar
	Sentiment *Sentiment
	Embedding *Embedding
}

// New builds handles for every configured capability. Nothing is contacted
// until first use or Warm.
func New(c config.Services, log logrus.FieldLogger) *Registry {
	r := &Registry{}
	probe := func(url string) func(context.Context) (*clients.HTTP, error) {
		return func(ctx context.Context) (*clients.HTTP, error) {
			h := clients.NewHTTP(c.Timeout)
			if err := h.Ping(ctx, url); err != nil {
				return nil, err
			}
			return h, nil
		}
	}

	if c.Grammar.URL != "" {
		r.Grammar = &Grammar{
			h:        newHandle("grammar", log, probe(clients.GrammarProbeURL(c.Grammar.URL))),
			url:      c.Grammar.URL,
			language: c.Grammar.Language,
		}
	}
	if c.Sentiment.Backend == config.SentimentHTTP && c.Sentiment.URL != "" {
		r.Sentiment = &Sentiment{
			h:   newHandle("sentiment", log, probe(clients.HealthURL(c.Sentiment.URL))),
			url: c.Sentiment.URL,
		}
	}
	if c.Embedding.URL != "" {
		r.Embedding = &Embedding{
			h:     newHandle("embedding", log, probe(clients.HealthURL(c.Embedding.URL))),
			url:   c.Embedding.URL,
			model: c.Embedding.Model,
		}
	}
	return r
}

// Warm constructs every configured handle concurrently and waits for them.
// Failures only switch the affected capability to its fallback.
func (r *Registry) Warm(ctx context.Context) {
	var g errgroup.Group
	if r.Grammar != nil {
		g.Go(func() error { _, _ = r.Grammar.h.get(ctx); return nil })
	}
	if r.Sentiment != nil {
		g.Go(func() error { _, _ = r.Sentiment.h.get(ctx); return nil })
	}
	if r.Embedding != nil {
		g.Go(func() error { _, _ = r.Embedding.h.get(ctx); return nil })
	}
	_ = g.Wait()
}

// Services returns the capabilities to inject into the scoring pipeline.
func (r *Registry) Services() orchestrator.Services {
	var s orchestrator.Services
	if r.Grammar != nil {
		s.Grammar = r.Grammar
	}
	if r.Sentiment != nil {
		s.Sentiment = r.Sentiment
	}
	if r.Embedding != nil {
		s.Embedder = r.Embedding
	}
	return s
}

// Status reports the state of each capability.
func (r *Registry) Status() map[string]State {
	out := map[string]State{
		"grammar":   StateUnconfigured,
		"sentiment": StateUnconfigured,
		"embedding": StateUnconfigured,
	}
	if r.Grammar != nil {
		out["grammar"] = r.Grammar.h.state()
	}
	if r.Sentiment != nil {
		out["sentiment"] = r.Sentiment.h.state()
	}
	if r.Embedding != nil {
		out["embedding"] = r.Embedding.h.state()
	}
	return out
}
