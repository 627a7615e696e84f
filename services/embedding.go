package services

import (
	"context"

	"github.com/maastricht-university/speechscore/clients"
)

// Embedding encodes sentences through an HTTP embedding service.
type Embedding struct {
	h     *handle[*clients.HTTP]
	url   string
	model string
}

func (e *Embedding) Name() string { return "embedding-service" }

func (e *Embedding) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	c, err := e.h.get(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.Embed(ctx, e.url, e.model, texts)
	if err != nil {
		e.h.fail(ctx, err)
		return nil, err
	}
	return resp.Embeddings, nil
}
