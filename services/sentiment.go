package services

import (
	"context"

	"github.com/maastricht-university/speechscore/clients"
)

// Sentiment scores polarity through an HTTP sentiment service.
type Sentiment struct {
	h   *handle[*clients.HTTP]
	url string
}

func (s *Sentiment) Name() string { return "sentiment-service" }

func (s *Sentiment) Compound(ctx context.Context, text string) (float64, error) {
	c, err := s.h.get(ctx)
	if err != nil {
		return 0, err
	}
	resp, err := c.Sentiment(ctx, s.url, text)
	if err != nil {
		s.h.fail(ctx, err)
		return 0, err
	}
	return resp.Compound, nil
}
