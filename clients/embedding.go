package clients

import (
	"context"
	"fmt"
)

// --- Embedding (/embed) ---
type EmbedReq struct {
	Texts []string `json:"texts"`
	Model string   `json:"model,omitempty"`
}

type EmbedResp struct {
	Embeddings [][]float64 `json:"embeddings"`
	Model      string      `json:"model"`
}

func (h *HTTP) Embed(ctx context.Context, url, model string, texts []string) (*EmbedResp, error) {
	var out EmbedResp
	if err := h.postJSON(ctx, "embed", url+"/embed", EmbedReq{Texts: texts, Model: model}, &out); err != nil {
		return nil, err
	}
	if len(out.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed: got %d vectors for %d texts", len(out.Embeddings), len(texts))
	}
	return &out, nil
}
