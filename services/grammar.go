package services

import (
	"context"

	"github.com/maastricht-university/speechscore/clients"
)

// Grammar checks text against a LanguageTool server.
type Grammar struct {
	h        *handle[*clients.HTTP]
	url      string
	language string
}

func (g *Grammar) Name() string { return "language-tool" }

func (g *Grammar) CountIssues(ctx context.Context, text string) (int, error) {
	c, err := g.h.get(ctx)
	if err != nil {
		return 0, err
	}
	resp, err := c.CheckGrammar(ctx, g.url, g.language, text)
	if err != nil {
		g.h.fail(ctx, err)
		return 0, err
	}
	return resp.Issues(), nil
}
