package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	h := NewHTTP(time.Second)
	require.NoError(t, h.Ping(context.Background(), HealthURL(srv.URL)))
	assert.Error(t, h.Ping(context.Background(), srv.URL+"/missing"))
}

func TestCheckGrammar(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/check", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "en-US", r.PostForm.Get("language"))
		assert.Equal(t, "he go  home", r.PostForm.Get("text"))
		_, _ = w.Write([]byte(`{"matches":[
			{"message":"agreement","offset":3,"length":2,"rule":{"id":"HE_VERB_AGR"}},
			{"message":"spaces","offset":5,"length":2,"rule":{"id":"WHITESPACE_RULE"}}]}`))
	}))
	defer srv.Close()

	resp, err := NewHTTP(time.Second).CheckGrammar(context.Background(), srv.URL, "en-US", "he go  home")
	require.NoError(t, err)
	assert.Len(t, resp.Matches, 2)
	assert.Equal(t, 1, resp.Issues())
}

func TestSentiment(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SentimentReq
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "great day", req.Text)
		_, _ = w.Write([]byte(`{"compound":0.62,"pos":0.7,"neu":0.3,"neg":0}`))
	}))
	defer srv.Close()

	resp, err := NewHTTP(time.Second).Sentiment(context.Background(), srv.URL, "great day")
	require.NoError(t, err)
	assert.InDelta(t, 0.62, resp.Compound, 1e-9)
}

func TestEmbed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req EmbedReq
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if len(req.Texts) == 1 {
			_, _ = w.Write([]byte(`{"embeddings":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"embeddings":[[1,0],[0,1]],"model":"mini"}`))
	}))
	defer srv.Close()

	h := NewHTTP(time.Second)
	resp, err := h.Embed(context.Background(), srv.URL, "mini", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, resp.Embeddings)

	_, err = h.Embed(context.Background(), srv.URL, "mini", []string{"a"})
	assert.Error(t, err)
}

func TestErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTP(time.Second).Sentiment(context.Background(), srv.URL, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model not loaded")
}
