package clients

import "context"

// --- Sentiment (/sentiment) ---
type SentimentReq struct {
	Text string `json:"text"`
}
type SentimentResp struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Neutral  float64 `json:"neu"`
	Negative float64 `json:"neg"`
}

func (h *HTTP) Sentiment(ctx context.Context, url, text string) (*SentimentResp, error) {
	var out SentimentResp
	if err := h.postJSON(ctx, "sentiment", url+"/sentiment", SentimentReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
