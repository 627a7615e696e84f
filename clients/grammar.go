package clients

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// --- Grammar (LanguageTool /v2/check) ---

// WhitespaceRule is LanguageTool's rule for doubled or missing spaces.
const WhitespaceRule = "WHITESPACE_RULE"

type GrammarRule struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
type GrammarMatch struct {
	Message string      `json:"message"`
	Offset  int         `json:"offset"`
	Length  int         `json:"length"`
	Rule    GrammarRule `json:"rule"`
}
type GrammarResp struct {
	Matches []GrammarMatch `json:"matches"`
}

// Issues counts matches other than whitespace-only violations.
func (r *GrammarResp) Issues() int {
	n := 0
	for _, m := range r.Matches {
		if m.Rule.ID != WhitespaceRule {
			n++
		}
	}
	return n
}

func (h *HTTP) CheckGrammar(ctx context.Context, baseURL, language, text string) (*GrammarResp, error) {
	form := url.Values{"text": {text}, "language": {language}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var out GrammarResp
	if err := h.do("grammar", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GrammarProbeURL is the endpoint used to check a LanguageTool server is up.
func GrammarProbeURL(baseURL string) string { return baseURL + "/v2/languages" }
